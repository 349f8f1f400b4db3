package rbac

import (
	"testing"
)

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		name      string
		idpRole   string
		localRole *string
		want      string
	}{
		{
			name:    "пустая роль IdP — родитель",
			idpRole: "",
			want:    RoleParent,
		},
		{
			name:    "admin из IdP, без локальной роли",
			idpRole: RoleAdmin,
			want:    RoleAdmin,
		},
		{
			name:      "parent из IdP, локальная admin — повышение",
			idpRole:   RoleParent,
			localRole: strPtr(RoleAdmin),
			want:      RoleAdmin,
		},
		{
			name:      "admin из IdP, локальная parent — игнорируется (нельзя понизить)",
			idpRole:   RoleAdmin,
			localRole: strPtr(RoleParent),
			want:      RoleAdmin,
		},
		{
			name:      "пустая роль IdP, локальная admin",
			idpRole:   "",
			localRole: strPtr(RoleAdmin),
			want:      RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveRole(tt.idpRole, tt.localRole)
			if got != tt.want {
				t.Errorf("EffectiveRole(%q, %v) = %q, хотели %q",
					tt.idpRole, fmtPtr(tt.localRole), got, tt.want)
			}
		})
	}
}

func TestHighestRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{name: "пустой набор", roles: nil, want: ""},
		{name: "один admin", roles: []string{RoleAdmin}, want: RoleAdmin},
		{name: "parent + admin", roles: []string{RoleParent, RoleAdmin}, want: RoleAdmin},
		{name: "все parent", roles: []string{RoleParent, RoleParent}, want: RoleParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighestRole(tt.roles)
			if got != tt.want {
				t.Errorf("HighestRole(%v) = %q, хотели %q", tt.roles, got, tt.want)
			}
		})
	}
}

func TestMapGroupsToRole(t *testing.T) {
	adminGroups := []string{"parentlib-admins", "editors"}

	tests := []struct {
		name   string
		groups []string
		want   string
	}{
		{name: "нет групп", groups: nil, want: RoleParent},
		{name: "группа админов", groups: []string{"parentlib-admins"}, want: RoleAdmin},
		{name: "вторая группа админов", groups: []string{"family", "editors"}, want: RoleAdmin},
		{name: "посторонние группы", groups: []string{"family", "beta"}, want: RoleParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapGroupsToRole(tt.groups, adminGroups)
			if got != tt.want {
				t.Errorf("MapGroupsToRole(%v) = %q, хотели %q", tt.groups, got, tt.want)
			}
		})
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"admin":   RoleAdmin,
		"ADMIN":   RoleAdmin,
		"parent":  RoleParent,
		"offline": "",
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Errorf("NormalizeRole(%q) = %q, хотели %q", in, got, want)
		}
	}
	if !IsValidRole(RoleParent) || IsValidRole("readonly") {
		t.Error("IsValidRole вернул неожиданный результат")
	}
}

func strPtr(s string) *string { return &s }

func fmtPtr(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
