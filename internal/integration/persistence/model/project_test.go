package model

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
)

func sampleProject() *entity.Project {
	initial := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	final := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	p := entity.NewProject(
		"Obra Sur",
		"P-042",
		entity.ProjectStatusOnHold,
		&initial,
		&final,
		decimal.NewFromInt(5000000),
		[]entity.Category{
			{
				Name:      "Materiales",
				Cost:      decimal.NewFromInt(120),
				IVAAmount: decimal.NewFromInt(19),
				Items: []entity.Item{
					{Name: "Cemento", Unit: "bulto", Quantity: decimal.NewFromInt(10), Cost: decimal.NewFromInt(35)},
				},
			},
			{
				Name: entity.PersonnelCategoryName,
				Items: []entity.Item{
					{
						Name: entity.OvertimeItemName,
						OvertimeRecords: []entity.OvertimeRecord{
							{EmployeeID: uuid.New(), OvertimeType: entity.OvertimeDaytime, Hours: decimal.NewFromInt(2), Cost: decimal.NewFromInt(25000)},
						},
					},
				},
			},
		},
		"obra con anticipo",
	)
	p.Categories = entity.AssignCategoryKinds(p.Categories)
	return p
}

func TestProjectRecord_RoundTrip(t *testing.T) {
	p := sampleProject()

	record := RecordFromEntity(p)
	restored := record.ToEntity()

	if restored.ID != p.ID {
		t.Errorf("expected id %s, got %s", p.ID, restored.ID)
	}
	if restored.Name != p.Name || restored.NumberID != p.NumberID {
		t.Errorf("unexpected identity fields: %+v", restored)
	}
	if restored.Status != entity.ProjectStatusOnHold {
		t.Errorf("expected status on-hold, got %s", restored.Status)
	}
	if restored.InitialDate == nil || !restored.InitialDate.Equal(*p.InitialDate) {
		t.Errorf("expected initial date %v, got %v", p.InitialDate, restored.InitialDate)
	}
	if restored.FinalDate == nil || !restored.FinalDate.Equal(*p.FinalDate) {
		t.Errorf("expected final date %v, got %v", p.FinalDate, restored.FinalDate)
	}
	if !restored.Income.Equal(p.Income) {
		t.Errorf("expected income %s, got %s", p.Income, restored.Income)
	}
	if len(restored.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(restored.Categories))
	}
	if restored.Categories[0].Kind != entity.CategoryKindGeneric {
		t.Errorf("expected generic kind, got %s", restored.Categories[0].Kind)
	}
	if restored.Categories[1].Kind != entity.CategoryKindPersonnel {
		t.Errorf("expected personnel kind, got %s", restored.Categories[1].Kind)
	}
	if restored.Categories[1].Items[0].Kind != entity.LineKindOvertime {
		t.Errorf("expected overtime line kind, got %s", restored.Categories[1].Items[0].Kind)
	}
	record2 := RecordFromEntity(restored)
	if record.Categories != record2.Categories {
		t.Errorf("expected categories encoding to be stable:\n%s\n%s", record.Categories, record2.Categories)
	}
}

func TestParseCategories(t *testing.T) {
	t.Run("empty and null resolve to empty list", func(t *testing.T) {
		for _, raw := range []string{"", "null"} {
			if got := ParseCategories(raw); len(got) != 0 {
				t.Errorf("expected empty categories for %q, got %v", raw, got)
			}
		}
	})

	t.Run("garbage resolves to empty list", func(t *testing.T) {
		if got := ParseCategories("{not json"); len(got) != 0 {
			t.Errorf("expected empty categories, got %v", got)
		}
	})

	t.Run("doubly encoded arrays are unwrapped", func(t *testing.T) {
		raw := `"[{\"name\":\"Personal\",\"items\":[]}]"`
		got := ParseCategories(raw)
		if len(got) != 1 {
			t.Fatalf("expected 1 category, got %d", len(got))
		}
		if got[0].Kind != entity.CategoryKindPersonnel {
			t.Errorf("expected personnel kind, got %s", got[0].Kind)
		}
	})

	t.Run("kinds are assigned on parse", func(t *testing.T) {
		got := ParseCategories(`[{"name":"Insumos","items":[]}]`)
		if len(got) != 1 || got[0].Kind != entity.CategoryKindSupplies {
			t.Errorf("expected supplies kind, got %v", got)
		}
	})
}

func TestStringifyProjects(t *testing.T) {
	t.Run("round trips through ParseProjects", func(t *testing.T) {
		p := sampleProject()

		raw := StringifyProjects([]*entity.Project{p})
		restored, err := ParseProjects(raw)
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if len(restored) != 1 {
			t.Fatalf("expected 1 project, got %d", len(restored))
		}
		if restored[0].ID != p.ID {
			t.Errorf("expected id %s, got %s", p.ID, restored[0].ID)
		}
		if StringifyProjects(restored) != raw {
			t.Error("expected canonical serialization to be stable across a round trip")
		}
	})

	t.Run("excludes timestamps from the canonical form", func(t *testing.T) {
		p := sampleProject()
		before := StringifyProjects([]*entity.Project{p})

		p.UpdatedAt = p.UpdatedAt.Add(48 * time.Hour)
		p.CreatedAt = p.CreatedAt.Add(-48 * time.Hour)

		if StringifyProjects([]*entity.Project{p}) != before {
			t.Error("expected timestamps to not affect the canonical serialization")
		}
		if strings.Contains(before, "createdAt") || strings.Contains(before, "updatedAt") {
			t.Error("expected canonical serialization to omit timestamp fields")
		}
	})

	t.Run("corrupt payload yields an error", func(t *testing.T) {
		if _, err := ParseProjects("{corrupt"); err == nil {
			t.Error("expected error for corrupt payload")
		}
	})
}
