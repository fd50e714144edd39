package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeriq/models"
)

func exportListings() []models.CanonicalListing {
	return []models.CanonicalListing{
		{
			RawListing:        models.RawListing{JobTitle: "Data Engineer, Cloud", SkillsText: "AWS, SQL"},
			RoleCategory:      models.RoleDataEngineer,
			CanonicalLocation: models.CityPune,
			ExperienceBand:    models.Band2To5,
		},
		{
			RawListing:     models.RawListing{JobTitle: "ML Engineer"},
			RoleCategory:   models.RoleMLEngineer,
			ExperienceBand: models.Band0To1,
		},
	}
}

func TestEncodeCSVSelectedColumns(t *testing.T) {
	columns, err := models.ParseExportColumns([]string{"Job Title", "Skills"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, exportListings(), columns))

	want := "job_title,skills_text\n" +
		"\"Data Engineer, Cloud\",\"AWS, SQL\"\n" +
		"ML Engineer,\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeCSVDefaultColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, nil, nil))
	assert.Equal(t, "job_title,role_category,canonical_location,experience_band\n", buf.String())
}

func TestCSVWriterRoundTripsThroughCanonicalProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "canonical.csv")
	w, err := NewCSVWriter(path, models.AllExportColumns)
	require.NoError(t, err)
	require.NoError(t, w.Write(context.Background(), exportListings()))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	profile, err := LookupProfile("canonical")
	require.NoError(t, err)
	rows, err := ReadRaw(f, profile)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Data Engineer, Cloud", rows[0].JobTitle)
	assert.Equal(t, "Pune", rows[0].Location)
	assert.Equal(t, "2-5", rows[0].Experience)
	assert.Equal(t, "", rows[1].Location)
}
