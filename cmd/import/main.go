package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/vetlyst/directory-api/internal/config"
	"github.com/vetlyst/directory-api/internal/model"
	"github.com/vetlyst/directory-api/internal/repository/postgres"
)

// Bulk importer for clinic listings. This is the process that owns clinic
// rows; the API itself never writes them.
func main() {
	var (
		path     = flag.String("file", "clinics_data.csv", "path to the clinics CSV export")
		truncate = flag.Bool("truncate", false, "truncate the clinics table before importing")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	repo := postgres.NewClinicRepository(db)
	ctx := context.Background()

	if *truncate {
		if err := repo.Truncate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to truncate clinics")
		}
		log.Info().Msg("clinics table truncated")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("failed to open CSV")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read CSV header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	imported, failed := 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed row")
			failed++
			continue
		}

		clinic := rowToClinic(cols, record)
		if clinic.Name == "" || clinic.PlaceID == "" {
			log.Warn().Msg("skipping row without clinic_name or place_id")
			failed++
			continue
		}

		if err := repo.Create(ctx, clinic); err != nil {
			log.Warn().Err(err).Str("clinic", clinic.Name).Msg("failed to import clinic")
			failed++
			continue
		}
		imported++
		if imported%50 == 0 {
			log.Info().Int("imported", imported).Msg("import progress")
		}
	}

	log.Info().Int("imported", imported).Int("failed", failed).Msg("import complete")
}

func rowToClinic(cols map[string]int, record []string) *model.Clinic {
	get := func(name string) string {
		if i, ok := cols[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	return &model.Clinic{
		PlaceID:        get("place_id"),
		Name:           get("clinic_name"),
		Website:        get("site"),
		Phone:          get("phone"),
		Address:        get("full_address"),
		City:           get("city"),
		Zip:            get("zip"),
		State:          get("state"),
		ClinicType:     get("clinic_type"),
		SpeciesTreated: get("species_treated"),
		Latitude:       parseFloat(get("latitude")),
		Longitude:      parseFloat(get("longitude")),
		Rating:         parseFloat(get("rating")),
		Reviews:        parseInt(get("reviews")),
		WorkingHours:   get("working_hours"),
		ListingTier:    get("listing_tier"),
		Email:          get("lead_email"),
	}
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
