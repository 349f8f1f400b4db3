package model

import "testing"

func TestEnumsValid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		got   bool
	}{
		{name: "категория из набора", valid: true, got: CategoryNutrition.Valid()},
		{name: "категория в нижнем регистре", valid: false, got: Category("nutrition").Valid()},
		{name: "пустая категория", valid: false, got: Category("").Valid()},
		{name: "возрастная группа ALL_AGES", valid: true, got: AgeGroupAllAges.Valid()},
		{name: "неизвестная возрастная группа", valid: false, got: AgeGroup("ADULT").Valid()},
		{name: "формат PDF", valid: true, got: ResourceTypePDF.Valid()},
		{name: "неизвестный формат", valid: false, got: ResourceType("EPUB").Valid()},
		{name: "хостинг EXTERNAL", valid: true, got: HostingExternal.Valid()},
		{name: "неизвестный хостинг", valid: false, got: HostingType("CDN").Valid()},
		{name: "родство GUARDIAN", valid: true, got: RelationshipGuardian.Valid()},
		{name: "домохозяйство CO_PARENTING", valid: true, got: HouseholdCoParenting.Valid()},
		{name: "неизвестное домохозяйство", valid: false, got: HouseholdType("COMMUNE").Valid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.valid {
				t.Errorf("Valid() = %v, хотели %v", tt.got, tt.valid)
			}
		})
	}
}
