// Пакет rbac — определение эффективной роли субъекта.
// Любой аутентифицированный пользователь IdP — родитель (PARENT).
// Роль ADMIN выдаётся группами/ролями IdP либо записью в admin_users.
// Итоговая роль = max(роль из IdP, локальная роль). Понизить роль нельзя.
package rbac

// Роли в порядке возрастания привилегий.
const (
	RoleParent = "PARENT"
	RoleAdmin  = "ADMIN"
)

// roleWeight — вес роли для сравнения.
var roleWeight = map[string]int{
	RoleParent: 1,
	RoleAdmin:  2,
}

// EffectiveRole вычисляет итоговую роль = max(idpRole, localRole).
// Если localRole == nil, возвращает idpRole; пустая idpRole трактуется как PARENT.
func EffectiveRole(idpRole string, localRole *string) string {
	if idpRole == "" {
		idpRole = RoleParent
	}
	if localRole == nil {
		return idpRole
	}
	return maxRole(idpRole, *localRole)
}

// maxRole возвращает роль с максимальными привилегиями из двух.
func maxRole(a, b string) string {
	if roleWeight[a] >= roleWeight[b] {
		return a
	}
	return b
}

// HighestRole возвращает максимальную роль из набора.
// Если набор пуст — возвращает пустую строку.
func HighestRole(roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	highest := roles[0]
	for _, r := range roles[1:] {
		highest = maxRole(highest, r)
	}
	return highest
}

// MapGroupsToRole возвращает ADMIN, если хотя бы одна группа пользователя
// входит в adminGroups, иначе PARENT.
func MapGroupsToRole(groups []string, adminGroups []string) string {
	adminSet := toSet(adminGroups)
	for _, g := range groups {
		if adminSet[g] {
			return RoleAdmin
		}
	}
	return RoleParent
}

// NormalizeRole приводит роль из claim realm_access.roles к внутреннему виду.
// Keycloak-роли обычно в нижнем регистре ("admin"); неизвестные роли — "".
func NormalizeRole(role string) string {
	switch role {
	case "admin", "ADMIN":
		return RoleAdmin
	case "parent", "PARENT":
		return RoleParent
	default:
		return ""
	}
}

// IsValidRole проверяет, является ли строка допустимой ролью.
func IsValidRole(role string) bool {
	_, ok := roleWeight[role]
	return ok
}

// toSet конвертирует срез строк в map для быстрого поиска.
func toSet(items []string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, item := range items {
		s[item] = true
	}
	return s
}
