package configs

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"github.com/lorpaxx/foodgram-project-react/entity"
)

// SeedCatalog loads the reference data (measurement units, ingredients, tags)
// from CSV files. Missing files are skipped so an empty install still boots.
func SeedCatalog(cfg *Config) error {
	if err := seedIngredients(cfg.IngredientsFile); err != nil {
		return err
	}
	return seedTags(cfg.TagsFile)
}

// rows: name,unit
func seedIngredients(filename string) error {
	rows, err := readCSV(filename)
	if err != nil {
		log.Println("skip seeding ingredients:", err)
		return nil
	}

	db := DB()
	var added int64
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(row[0]))
		unitName := strings.ToLower(strings.TrimSpace(row[1]))
		if name == "" || unitName == "" {
			continue
		}

		var unit entity.MeasurementUnit
		if err := db.FirstOrCreate(&unit, entity.MeasurementUnit{Name: unitName}).Error; err != nil {
			return err
		}
		ing := entity.Ingredient{Name: name, MeasurementUnitID: unit.ID}
		if err := db.Where(&ing).FirstOrCreate(&ing).Error; err != nil {
			return err
		}
		added++
	}
	log.Println("seeded", added, "ingredients from", filename)
	return nil
}

// rows: name,color,slug
func seedTags(filename string) error {
	rows, err := readCSV(filename)
	if err != nil {
		log.Println("skip seeding tags:", err)
		return nil
	}

	db := DB()
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		tag := entity.Tag{Name: row[0], Color: row[1], Slug: row[2]}
		if err := db.Where(entity.Tag{Slug: tag.Slug}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
	}
	log.Println("seeded tags from", filename)
	return nil
}

func readCSV(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
