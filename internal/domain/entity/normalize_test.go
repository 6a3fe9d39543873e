package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAssignCategoryKinds(t *testing.T) {
	t.Run("classifies reserved names", func(t *testing.T) {
		categories := AssignCategoryKinds([]Category{
			{Name: PersonnelCategoryName},
			{Name: SuppliesCategoryName},
			{Name: "Materiales"},
		})

		if categories[0].Kind != CategoryKindPersonnel {
			t.Errorf("expected personnel kind, got %s", categories[0].Kind)
		}
		if categories[1].Kind != CategoryKindSupplies {
			t.Errorf("expected supplies kind, got %s", categories[1].Kind)
		}
		if categories[2].Kind != CategoryKindGeneric {
			t.Errorf("expected generic kind, got %s", categories[2].Kind)
		}
	})

	t.Run("only the first Personal category is personnel", func(t *testing.T) {
		categories := AssignCategoryKinds([]Category{
			{Name: PersonnelCategoryName},
			{Name: PersonnelCategoryName},
		})

		if categories[0].Kind != CategoryKindPersonnel {
			t.Errorf("expected first category to be personnel, got %s", categories[0].Kind)
		}
		if categories[1].Kind != CategoryKindGeneric {
			t.Errorf("expected duplicate category to be generic, got %s", categories[1].Kind)
		}
	})

	t.Run("overtime lines need the reserved name, personnel parent and records", func(t *testing.T) {
		categories := AssignCategoryKinds([]Category{
			{
				Name: PersonnelCategoryName,
				Items: []Item{
					{Name: OvertimeItemName, OvertimeRecords: []OvertimeRecord{{Cost: decimal.NewFromInt(10)}}},
					{Name: OvertimeItemName}, // no records
					{Name: "Jornal", OvertimeRecords: []OvertimeRecord{{Cost: decimal.NewFromInt(10)}}},
				},
			},
			{
				Name: "Materiales",
				Items: []Item{
					{Name: OvertimeItemName, OvertimeRecords: []OvertimeRecord{{Cost: decimal.NewFromInt(10)}}},
				},
			},
		})

		personnel := categories[0].Items
		if personnel[0].Kind != LineKindOvertime {
			t.Errorf("expected overtime kind, got %s", personnel[0].Kind)
		}
		if personnel[1].Kind != LineKindStandard {
			t.Errorf("expected standard kind without records, got %s", personnel[1].Kind)
		}
		if personnel[2].Kind != LineKindStandard {
			t.Errorf("expected standard kind for other names, got %s", personnel[2].Kind)
		}
		if categories[1].Items[0].Kind != LineKindStandard {
			t.Errorf("expected standard kind outside personnel, got %s", categories[1].Items[0].Kind)
		}
	})

	t.Run("nil input yields empty slice", func(t *testing.T) {
		categories := AssignCategoryKinds(nil)
		if categories == nil || len(categories) != 0 {
			t.Errorf("expected empty slice, got %v", categories)
		}
	})
}
