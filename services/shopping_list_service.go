package services

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lorpaxx/foodgram-project-react/repository"
)

// ShoppingListService renders a user's aggregated shopping list as
// semicolon-delimited CSV: one row per (ingredient, unit) with the summed
// amount across every recipe in the cart.
type ShoppingListService struct {
	listRepo *repository.ShoppingListRepository
}

func NewShoppingListService(lr *repository.ShoppingListRepository) *ShoppingListService {
	return &ShoppingListService{listRepo: lr}
}

func (s *ShoppingListService) Rows(userID uint) ([]repository.ShoppingListRow, error) {
	return s.listRepo.Aggregate(userID)
}

func (s *ShoppingListService) WriteCSV(w io.Writer, userID uint) error {
	rows, err := s.listRepo.Aggregate(userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"ingredient", "measurement_unit", "total"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Ingredient, row.MeasurementUnit, strconv.FormatInt(row.Total, 10)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
