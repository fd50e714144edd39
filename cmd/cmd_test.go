package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeriq/models"
)

const naukriFixture = `Job_Role,Location,Job Experience,Skills/Description
Senior Data Engineer,Pune,2-5,"AWS, SQL"
Data Engineer,Bangalore,2-5,Python
ML Engineer,Pune,0-1,Python
Analyst,Pune,3 years,Excel
`

// fixture writes a source CSV and a config pointing at it, returning the config path.
func fixture(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "naukri.csv")
	require.NoError(t, os.WriteFile(src, []byte(naukriFixture), 0o600))

	cfg := filepath.Join(dir, "careeriq.yaml")
	body := "sources:\n  - path: " + src + "\n    profile: naukri\n" + extra
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o600))
	return cfg
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExportToStdout(t *testing.T) {
	cfg := fixture(t, "")

	out, err := execute(t, "export", "--config", cfg, "--role", "Data Engineer", "--columns", "Job Title,Location", "-o", "-")
	require.NoError(t, err)

	assert.Equal(t, "job_title,canonical_location\nSenior Data Engineer,Pune\nData Engineer,Bengaluru\n", out)
}

func TestExportToFileWritesCanonicalOutput(t *testing.T) {
	dir := t.TempDir()
	canonical := filepath.Join(dir, "canonical.csv")
	exported := filepath.Join(dir, "export.csv")
	cfg := fixture(t, "output:\n  canonical: "+canonical+"\nexport:\n  path: "+exported+"\n")

	_, err := execute(t, "export", "--config", cfg, "--location", "pune")
	require.NoError(t, err)

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Equal(t,
		"job_title,role_category,canonical_location,experience_band\n"+
			"Senior Data Engineer,Data Engineer,Pune,2-5\n"+
			"ML Engineer,ML Engineer,Pune,0-1\n",
		string(data))

	data, err = os.ReadFile(canonical)
	require.NoError(t, err)
	assert.Contains(t, string(data), "job_title,role_category,canonical_location,experience_band,skills_text\n")
	assert.Contains(t, string(data), "Data Engineer,Data Engineer,Bengaluru,2-5,Python\n")
}

func TestExportRejectsUnknownColumn(t *testing.T) {
	cfg := fixture(t, "")
	_, err := execute(t, "export", "--config", cfg, "--columns", "Salary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export column")
}

func TestSendDryRun(t *testing.T) {
	cfg := fixture(t, "")

	out, err := execute(t, "send", "--config", cfg, "--dry-run", "--role", "Data Engineer")
	require.NoError(t, err)

	assert.Contains(t, out, "🔹 Total Jobs Analyzed: 2\n")
	assert.Contains(t, out, "1. Data Engineer – 2 jobs\n")
	assert.Contains(t, out, "1. Pune – 1 openings\n2. Bengaluru – 1 openings\n")
	assert.Contains(t, out, "2-5 years (100% of roles)\n")
	assert.Contains(t, out, "Target Data Engineer roles in Pune\n")
}

func TestSendEmptyScope(t *testing.T) {
	cfg := fixture(t, "")
	_, err := execute(t, "send", "--config", cfg, "--dry-run", "--location", "Chennai")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no listings in scope")
}

func TestSendRequiresTwilio(t *testing.T) {
	cfg := fixture(t, "")
	_, err := execute(t, "send", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twilio is disabled")
}

func TestSourceFlagOverridesConfig(t *testing.T) {
	cfg := fixture(t, "")
	other := filepath.Join(t.TempDir(), "ds.csv")
	require.NoError(t, os.WriteFile(other,
		[]byte("job_title,company_location,experience_level,job_category\nCloud Architect,Mumbai,5-10,Cloud\n"), 0o600))

	out, err := execute(t, "export", "--config", cfg, "--source", other+":ds_salary", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "job_title,role_category,canonical_location,experience_band\nCloud Architect,Cloud Engineer,Mumbai,5-10\n", out)
}

func TestOptions(t *testing.T) {
	cfg := fixture(t, "")
	out, err := execute(t, "options", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Roles:       Data Engineer, ML Engineer\n")
	assert.Contains(t, out, "Locations:   Bengaluru, Pune\n")
}

func TestScopeFlagsValidation(t *testing.T) {
	cfg := fixture(t, "")

	_, err := execute(t, "export", "--config", cfg, "--role", "Astronaut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role category")

	_, err = execute(t, "export", "--config", cfg, "--experience", "3 years")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown experience band")
}

func TestScopeFromFlags(t *testing.T) {
	c := newRunCommand()
	require.NoError(t, c.ParseFlags([]string{
		"--role", "Data Engineer", "--role", "ML Engineer",
		"--location", "bangalore,  ",
		"--experience", "10+",
	}))

	scope, err := scopeFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, []models.RoleCategory{models.RoleDataEngineer, models.RoleMLEngineer}, scope.Roles)
	assert.Equal(t, []string{"Bengaluru"}, scope.Locations)
	assert.Equal(t, []models.ExperienceBand{models.Band10Up}, scope.Bands)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "careeriq version: unknown\n", out)
}
