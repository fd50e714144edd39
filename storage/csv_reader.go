package storage

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"careeriq/models"
)

// ReadRaw parses a CSV export with a header row into raw listings using profile's column names.
// The job title and experience columns are required; the others may be missing.
func ReadRaw(r io.Reader, profile SourceProfile) ([]models.RawListing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "csv: read header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		index[strings.TrimSpace(h)] = i
	}

	for _, required := range []string{profile.JobTitle, profile.Experience} {
		if _, ok := index[required]; !ok {
			return nil, errors.Newf("csv: %s export has no %q column", profile.Name, required)
		}
	}

	field := func(rec []string, name string) string {
		if name == "" {
			return ""
		}
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var listings []models.RawListing
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "csv: read row %d", line)
		}

		dataset := profile.Dataset
		if dataset == "" {
			dataset = field(rec, profile.SourceColumn)
		}

		listings = append(listings, models.RawListing{
			JobTitle:      field(rec, profile.JobTitle),
			Location:      field(rec, profile.Location),
			Experience:    field(rec, profile.Experience),
			SkillsText:    field(rec, profile.Skills),
			SourceDataset: dataset,
		})
	}
	return listings, nil
}
