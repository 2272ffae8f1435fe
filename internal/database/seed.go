package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with the lookup data the content workflow
// references: degree levels, funding types, and employment types. It is a
// no-op when the lookups already exist, so it is safe to run on every
// development start.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM degree_levels").Scan(&count); err != nil {
		return fmt.Errorf("seed check degree levels: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	degreeLevels := [][2]string{
		{"Bachelors", "bachelors"},
		{"Masters", "masters"},
		{"PhD", "phd"},
		{"Postdoc", "postdoc"},
		{"Diploma", "diploma"},
	}
	for _, dl := range degreeLevels {
		if _, err := db.Exec(
			`INSERT INTO degree_levels (name, slug) VALUES ($1, $2)`,
			dl[0], dl[1],
		); err != nil {
			return fmt.Errorf("seed degree level %s: %w", dl[1], err)
		}
	}

	fundingTypes := [][2]string{
		{"Fully Funded", "fully-funded"},
		{"Partially Funded", "partially-funded"},
		{"Tuition Waiver", "tuition-waiver"},
		{"Self Funded", "self-funded"},
	}
	for _, ft := range fundingTypes {
		if _, err := db.Exec(
			`INSERT INTO funding_types (name, slug) VALUES ($1, $2)`,
			ft[0], ft[1],
		); err != nil {
			return fmt.Errorf("seed funding type %s: %w", ft[1], err)
		}
	}

	employmentTypes := [][2]string{
		{"Full-time", "full-time"},
		{"Part-time", "part-time"},
		{"Contract", "contract"},
		{"Internship", "internship"},
		{"Remote", "remote"},
	}
	for _, et := range employmentTypes {
		if _, err := db.Exec(
			`INSERT INTO employment_types (name, slug) VALUES ($1, $2)`,
			et[0], et[1],
		); err != nil {
			return fmt.Errorf("seed employment type %s: %w", et[1], err)
		}
	}

	slog.Info("database seeded with lookup data",
		"degree_levels", len(degreeLevels),
		"funding_types", len(fundingTypes),
		"employment_types", len(employmentTypes),
	)

	return nil
}
