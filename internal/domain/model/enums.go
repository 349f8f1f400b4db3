// Пакет model — доменные модели каталога ресурсов для родителей.
// enums.go — перечисления (категории, возрастные группы, форматы) и их валидация.
package model

// Category — тематическая категория ресурса.
type Category string

// Допустимые категории ресурсов.
const (
	CategoryParentingSkills  Category = "PARENTING_SKILLS"
	CategoryChildDevelopment Category = "CHILD_DEVELOPMENT"
	CategoryHealthWellness   Category = "HEALTH_WELLNESS"
	CategoryEducation        Category = "EDUCATION"
	CategorySafety           Category = "SAFETY"
	CategoryNutrition        Category = "NUTRITION"
	CategoryMentalHealth     Category = "MENTAL_HEALTH"
	CategoryFamilySupport    Category = "FAMILY_SUPPORT"
)

// Categories — все категории в порядке отображения.
var Categories = []Category{
	CategoryParentingSkills,
	CategoryChildDevelopment,
	CategoryHealthWellness,
	CategoryEducation,
	CategorySafety,
	CategoryNutrition,
	CategoryMentalHealth,
	CategoryFamilySupport,
}

// Valid проверяет, что значение входит в перечисление.
func (c Category) Valid() bool {
	return contains(Categories, c)
}

// AgeGroup — возрастная группа детей, для которой предназначен ресурс.
type AgeGroup string

// Допустимые возрастные группы.
const (
	AgeGroupPrenatal  AgeGroup = "PRENATAL"
	AgeGroupInfant    AgeGroup = "INFANT"
	AgeGroupToddler   AgeGroup = "TODDLER"
	AgeGroupPreschool AgeGroup = "PRESCHOOL"
	AgeGroupSchoolAge AgeGroup = "SCHOOL_AGE"
	AgeGroupTeen      AgeGroup = "TEEN"
	AgeGroupAllAges   AgeGroup = "ALL_AGES"
)

// AgeGroups — все возрастные группы.
var AgeGroups = []AgeGroup{
	AgeGroupPrenatal,
	AgeGroupInfant,
	AgeGroupToddler,
	AgeGroupPreschool,
	AgeGroupSchoolAge,
	AgeGroupTeen,
	AgeGroupAllAges,
}

// Valid проверяет, что значение входит в перечисление.
func (a AgeGroup) Valid() bool {
	return contains(AgeGroups, a)
}

// ResourceType — формат ресурса.
type ResourceType string

// Допустимые форматы.
const (
	ResourceTypeArticle ResourceType = "ARTICLE"
	ResourceTypeVideo   ResourceType = "VIDEO"
	ResourceTypePDF     ResourceType = "PDF"
	ResourceTypeAudio   ResourceType = "AUDIO"
	ResourceTypeWebsite ResourceType = "WEBSITE"
)

// ResourceTypes — все форматы.
var ResourceTypes = []ResourceType{
	ResourceTypeArticle,
	ResourceTypeVideo,
	ResourceTypePDF,
	ResourceTypeAudio,
	ResourceTypeWebsite,
}

// Valid проверяет, что значение входит в перечисление.
func (t ResourceType) Valid() bool {
	return contains(ResourceTypes, t)
}

// HostingType — где хранится содержимое ресурса.
type HostingType string

// Допустимые варианты хостинга.
const (
	// HostingInternal — содержимое лежит в объектном хранилище.
	HostingInternal HostingType = "INTERNAL"
	// HostingExternal — ресурс ссылается на внешний URL (external_resources).
	HostingExternal HostingType = "EXTERNAL"
)

// Valid проверяет, что значение входит в перечисление.
func (h HostingType) Valid() bool {
	return h == HostingInternal || h == HostingExternal
}

// RelationshipType — кем пользователь приходится ребёнку.
type RelationshipType string

// Допустимые типы родства.
const (
	RelationshipMother      RelationshipType = "MOTHER"
	RelationshipFather      RelationshipType = "FATHER"
	RelationshipGuardian    RelationshipType = "GUARDIAN"
	RelationshipGrandparent RelationshipType = "GRANDPARENT"
	RelationshipCaregiver   RelationshipType = "CAREGIVER"
	RelationshipOther       RelationshipType = "OTHER"
)

// RelationshipTypes — все типы родства.
var RelationshipTypes = []RelationshipType{
	RelationshipMother,
	RelationshipFather,
	RelationshipGuardian,
	RelationshipGrandparent,
	RelationshipCaregiver,
	RelationshipOther,
}

// Valid проверяет, что значение входит в перечисление.
func (r RelationshipType) Valid() bool {
	return contains(RelationshipTypes, r)
}

// HouseholdType — состав семьи.
type HouseholdType string

// Допустимые типы домохозяйства.
const (
	HouseholdSingleParent      HouseholdType = "SINGLE_PARENT"
	HouseholdTwoParent         HouseholdType = "TWO_PARENT"
	HouseholdCoParenting       HouseholdType = "CO_PARENTING"
	HouseholdMultigenerational HouseholdType = "MULTIGENERATIONAL"
	HouseholdOther             HouseholdType = "OTHER"
)

// HouseholdTypes — все типы домохозяйства.
var HouseholdTypes = []HouseholdType{
	HouseholdSingleParent,
	HouseholdTwoParent,
	HouseholdCoParenting,
	HouseholdMultigenerational,
	HouseholdOther,
}

// Valid проверяет, что значение входит в перечисление.
func (h HouseholdType) Valid() bool {
	return contains(HouseholdTypes, h)
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
