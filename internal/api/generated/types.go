// Пакет generated — типы и серверный интерфейс API в формате oapi-codegen
// (chi-server) для контракта openapi.yaml.
package generated

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for AdminUserRole.
const (
	AdminUserRoleADMIN AdminUserRole = "ADMIN"
)

// Valid indicates whether the value is a known member of the AdminUserRole enum.
func (e AdminUserRole) Valid() bool {
	return e == AdminUserRoleADMIN
}

// Defines values for AgeGroup.
const (
	AgeGroupALLAGES   AgeGroup = "ALL_AGES"
	AgeGroupINFANT    AgeGroup = "INFANT"
	AgeGroupPRENATAL  AgeGroup = "PRENATAL"
	AgeGroupPRESCHOOL AgeGroup = "PRESCHOOL"
	AgeGroupSCHOOLAGE AgeGroup = "SCHOOL_AGE"
	AgeGroupTEEN      AgeGroup = "TEEN"
	AgeGroupTODDLER   AgeGroup = "TODDLER"
)

// Valid indicates whether the value is a known member of the AgeGroup enum.
func (e AgeGroup) Valid() bool {
	switch e {
	case AgeGroupALLAGES, AgeGroupINFANT, AgeGroupPRENATAL, AgeGroupPRESCHOOL,
		AgeGroupSCHOOLAGE, AgeGroupTEEN, AgeGroupTODDLER:
		return true
	default:
		return false
	}
}

// Defines values for Category.
const (
	CHILDDEVELOPMENT Category = "CHILD_DEVELOPMENT"
	EDUCATION        Category = "EDUCATION"
	FAMILYSUPPORT    Category = "FAMILY_SUPPORT"
	HEALTHWELLNESS   Category = "HEALTH_WELLNESS"
	MENTALHEALTH     Category = "MENTAL_HEALTH"
	NUTRITION        Category = "NUTRITION"
	PARENTINGSKILLS  Category = "PARENTING_SKILLS"
	SAFETY           Category = "SAFETY"
)

// Valid indicates whether the value is a known member of the Category enum.
func (e Category) Valid() bool {
	switch e {
	case CHILDDEVELOPMENT, EDUCATION, FAMILYSUPPORT, HEALTHWELLNESS,
		MENTALHEALTH, NUTRITION, PARENTINGSKILLS, SAFETY:
		return true
	default:
		return false
	}
}

// Defines values for HostingType.
const (
	EXTERNAL HostingType = "EXTERNAL"
	INTERNAL HostingType = "INTERNAL"
)

// Valid indicates whether the value is a known member of the HostingType enum.
func (e HostingType) Valid() bool {
	return e == EXTERNAL || e == INTERNAL
}

// Defines values for HouseholdType.
const (
	HouseholdTypeCOPARENTING       HouseholdType = "CO_PARENTING"
	HouseholdTypeMULTIGENERATIONAL HouseholdType = "MULTIGENERATIONAL"
	HouseholdTypeOTHER             HouseholdType = "OTHER"
	HouseholdTypeSINGLEPARENT      HouseholdType = "SINGLE_PARENT"
	HouseholdTypeTWOPARENT         HouseholdType = "TWO_PARENT"
)

// Valid indicates whether the value is a known member of the HouseholdType enum.
func (e HouseholdType) Valid() bool {
	switch e {
	case HouseholdTypeCOPARENTING, HouseholdTypeMULTIGENERATIONAL, HouseholdTypeOTHER,
		HouseholdTypeSINGLEPARENT, HouseholdTypeTWOPARENT:
		return true
	default:
		return false
	}
}

// Defines values for ObjectKind.
const (
	File  ObjectKind = "file"
	Image ObjectKind = "image"
)

// Valid indicates whether the value is a known member of the ObjectKind enum.
func (e ObjectKind) Valid() bool {
	return e == File || e == Image
}

// Defines values for RelationshipType.
const (
	RelationshipTypeCAREGIVER   RelationshipType = "CAREGIVER"
	RelationshipTypeFATHER      RelationshipType = "FATHER"
	RelationshipTypeGRANDPARENT RelationshipType = "GRANDPARENT"
	RelationshipTypeGUARDIAN    RelationshipType = "GUARDIAN"
	RelationshipTypeMOTHER      RelationshipType = "MOTHER"
	RelationshipTypeOTHER       RelationshipType = "OTHER"
)

// Valid indicates whether the value is a known member of the RelationshipType enum.
func (e RelationshipType) Valid() bool {
	switch e {
	case RelationshipTypeCAREGIVER, RelationshipTypeFATHER, RelationshipTypeGRANDPARENT,
		RelationshipTypeGUARDIAN, RelationshipTypeMOTHER, RelationshipTypeOTHER:
		return true
	default:
		return false
	}
}

// Defines values for ResourceType.
const (
	ARTICLE ResourceType = "ARTICLE"
	AUDIO   ResourceType = "AUDIO"
	PDF     ResourceType = "PDF"
	VIDEO   ResourceType = "VIDEO"
	WEBSITE ResourceType = "WEBSITE"
)

// Valid indicates whether the value is a known member of the ResourceType enum.
func (e ResourceType) Valid() bool {
	switch e {
	case ARTICLE, AUDIO, PDF, VIDEO, WEBSITE:
		return true
	default:
		return false
	}
}

// Defines values for ListResourcesParamsSort.
const (
	ListResourcesParamsSortCreatedAt  ListResourcesParamsSort = "created_at"
	ListResourcesParamsSortTimeToRead ListResourcesParamsSort = "time_to_read"
	ListResourcesParamsSortTitle      ListResourcesParamsSort = "title"
	ListResourcesParamsSortViews      ListResourcesParamsSort = "views"
)

// Defines values for ListResourcesParamsOrder.
const (
	Asc  ListResourcesParamsOrder = "asc"
	Desc ListResourcesParamsOrder = "desc"
)

// AdminCreate defines model for AdminCreate.
type AdminCreate struct {
	IdpUserId string `json:"idp_user_id"`
}

// AdminLog defines model for AdminLog.
type AdminLog struct {
	Action    string    `json:"action"`
	AdminId   string    `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	Details   string    `json:"details"`
	Id        string    `json:"id"`
}

// AdminLogCreate defines model for AdminLogCreate.
type AdminLogCreate struct {
	Action  string  `json:"action"`
	Details *string `json:"details,omitempty"`
}

// AdminLogListResponse defines model for AdminLogListResponse.
type AdminLogListResponse struct {
	HasMore bool       `json:"has_more"`
	Items   []AdminLog `json:"items"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	Total   int        `json:"total"`
}

// AdminUser defines model for AdminUser.
type AdminUser struct {
	CreatedAt time.Time            `json:"created_at"`
	Email     *openapi_types.Email `json:"email,omitempty"`
	Id        string               `json:"id"`
	IdpUserId string               `json:"idp_user_id"`
	Name      string               `json:"name"`
	Role      AdminUserRole        `json:"role"`
}

// AdminUserRole defines model for AdminUser.Role.
type AdminUserRole string

// AdminUserListResponse defines model for AdminUserListResponse.
type AdminUserListResponse struct {
	HasMore bool        `json:"has_more"`
	Items   []AdminUser `json:"items"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	Total   int         `json:"total"`
}

// AgeGroup defines model for AgeGroup.
type AgeGroup string

// Category defines model for Category.
type Category string

// Collection defines model for Collection.
type Collection struct {
	CreatedAt time.Time   `json:"created_at"`
	Id        string      `json:"id"`
	IsDefault bool        `json:"is_default"`
	ItemCount int         `json:"item_count"`
	Name      string      `json:"name"`
	ParentId  string      `json:"parent_id"`
	Resources *[]Resource `json:"resources,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CollectionCreate defines model for CollectionCreate.
type CollectionCreate struct {
	Name string `json:"name"`
}

// CollectionItem defines model for CollectionItem.
type CollectionItem struct {
	AddedAt      time.Time `json:"added_at"`
	CollectionId string    `json:"collection_id"`
	Id           string    `json:"id"`
	ResourceId   string    `json:"resource_id"`
}

// CollectionUpdate defines model for CollectionUpdate.
type CollectionUpdate struct {
	Name string `json:"name"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ExternalResource defines model for ExternalResource.
type ExternalResource struct {
	CreatedAt  time.Time `json:"created_at"`
	ResourceId string    `json:"resource_id"`
	UpdatedAt  time.Time `json:"updated_at"`
	Url        string    `json:"url"`
}

// ExternalResourceListResponse defines model for ExternalResourceListResponse.
type ExternalResourceListResponse struct {
	HasMore bool               `json:"has_more"`
	Items   []ExternalResource `json:"items"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Total   int                `json:"total"`
}

// ExternalResourceUpsert defines model for ExternalResourceUpsert.
type ExternalResourceUpsert struct {
	Url string `json:"url"`
}

// HostingType defines model for HostingType.
type HostingType string

// HouseholdType defines model for HouseholdType.
type HouseholdType string

// Label defines model for Label.
type Label struct {
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	Id        string    `json:"id"`
	Name      string    `json:"name"`
}

// LabelCreate defines model for LabelCreate.
type LabelCreate struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
}

// LabelUpdate defines model for LabelUpdate.
type LabelUpdate struct {
	Name string `json:"name"`
}

// ObjectKind defines model for ObjectKind.
type ObjectKind string

// Parent defines model for Parent.
type Parent struct {
	CreatedAt        time.Time            `json:"created_at"`
	Email            *openapi_types.Email `json:"email,omitempty"`
	FirstName        string               `json:"first_name"`
	HouseholdType    *HouseholdType       `json:"household_type,omitempty"`
	Id               string               `json:"id"`
	IdpUserId        string               `json:"idp_user_id"`
	KidsAgeGroups    []AgeGroup           `json:"kids_age_groups"`
	LastName         string               `json:"last_name"`
	Newsletter       bool                 `json:"newsletter"`
	Onboarded        bool                 `json:"onboarded"`
	RelationshipType *RelationshipType    `json:"relationship_type,omitempty"`
	TopicsOfInterest []Category           `json:"topics_of_interest"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// ParentListResponse defines model for ParentListResponse.
type ParentListResponse struct {
	HasMore bool     `json:"has_more"`
	Items   []Parent `json:"items"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
	Total   int      `json:"total"`
}

// ParentUpdate defines model for ParentUpdate.
type ParentUpdate struct {
	FirstName        *string           `json:"first_name,omitempty"`
	HouseholdType    *HouseholdType    `json:"household_type,omitempty"`
	KidsAgeGroups    *[]AgeGroup       `json:"kids_age_groups,omitempty"`
	LastName         *string           `json:"last_name,omitempty"`
	Newsletter       *bool             `json:"newsletter,omitempty"`
	Onboarded        *bool             `json:"onboarded,omitempty"`
	RelationshipType *RelationshipType `json:"relationship_type,omitempty"`
	TopicsOfInterest *[]Category       `json:"topics_of_interest,omitempty"`
}

// PresignedURL defines model for PresignedURL.
type PresignedURL struct {
	ExpiresAt time.Time          `json:"expires_at"`
	Headers   *map[string]string `json:"headers,omitempty"`
	Key       string             `json:"key"`
	Method    string             `json:"method"`
	Url       string             `json:"url"`
}

// RelationshipType defines model for RelationshipType.
type RelationshipType string

// Resource defines model for Resource.
type Resource struct {
	AgeGroups    []AgeGroup   `json:"age_groups"`
	Category     Category     `json:"category"`
	CreatedAt    time.Time    `json:"created_at"`
	CreatedBy    *string      `json:"created_by,omitempty"`
	Description  string       `json:"description"`
	ExternalUrl  *string      `json:"external_url,omitempty"`
	FileKey      *string      `json:"file_key,omitempty"`
	HostingType  HostingType  `json:"hosting_type"`
	Id           string       `json:"id"`
	ImageKey     *string      `json:"image_key,omitempty"`
	Labels       []Label      `json:"labels"`
	Language     string       `json:"language"`
	ResourceType ResourceType `json:"resource_type"`
	TimeToRead   int          `json:"time_to_read"`
	Title        string       `json:"title"`
	UpdatedAt    time.Time    `json:"updated_at"`
	ViewCount    int64        `json:"view_count"`
}

// ResourceCreate defines model for ResourceCreate.
type ResourceCreate struct {
	AgeGroups    []AgeGroup            `json:"age_groups"`
	Category     Category              `json:"category"`
	Description  *string               `json:"description,omitempty"`
	ExternalUrl  *string               `json:"external_url,omitempty"`
	HostingType  HostingType           `json:"hosting_type"`
	LabelIds     *[]openapi_types.UUID `json:"label_ids,omitempty"`
	Language     *string               `json:"language,omitempty"`
	ResourceType ResourceType          `json:"resource_type"`
	TimeToRead   *int                  `json:"time_to_read,omitempty"`
	Title        string                `json:"title"`
}

// ResourceLabel defines model for ResourceLabel.
type ResourceLabel struct {
	CreatedAt  time.Time `json:"created_at"`
	LabelId    string    `json:"label_id"`
	ResourceId string    `json:"resource_id"`
}

// ResourceLabelCreate defines model for ResourceLabelCreate.
type ResourceLabelCreate struct {
	LabelId    openapi_types.UUID `json:"label_id"`
	ResourceId openapi_types.UUID `json:"resource_id"`
}

// ResourceListResponse defines model for ResourceListResponse.
type ResourceListResponse struct {
	HasMore bool       `json:"has_more"`
	Items   []Resource `json:"items"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	Total   int        `json:"total"`
}

// ResourceRef defines model for ResourceRef.
type ResourceRef struct {
	ResourceId openapi_types.UUID `json:"resource_id"`
}

// ResourceType defines model for ResourceType.
type ResourceType string

// ResourceUpdate defines model for ResourceUpdate.
type ResourceUpdate struct {
	AgeGroups    *[]AgeGroup           `json:"age_groups,omitempty"`
	Category     *Category             `json:"category,omitempty"`
	Description  *string               `json:"description,omitempty"`
	ExternalUrl  *string               `json:"external_url,omitempty"`
	HostingType  *HostingType          `json:"hosting_type,omitempty"`
	LabelIds     *[]openapi_types.UUID `json:"label_ids,omitempty"`
	Language     *string               `json:"language,omitempty"`
	ResourceType *ResourceType         `json:"resource_type,omitempty"`
	TimeToRead   *int                  `json:"time_to_read,omitempty"`
	Title        *string               `json:"title,omitempty"`
}

// ResourceView defines model for ResourceView.
type ResourceView struct {
	FirstViewedAt time.Time `json:"first_viewed_at"`
	LastViewedAt  time.Time `json:"last_viewed_at"`
	ParentId      string    `json:"parent_id"`
	ResourceId    string    `json:"resource_id"`
	ViewCount     int       `json:"view_count"`
}

// ResourceViewStats defines model for ResourceViewStats.
type ResourceViewStats struct {
	LastViewedAt  *time.Time `json:"last_viewed_at,omitempty"`
	ResourceId    string     `json:"resource_id"`
	TotalViews    int64      `json:"total_views"`
	UniqueViewers int64      `json:"unique_viewers"`
}

// TestResponse defines model for TestResponse.
type TestResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// UploadURLRequest defines model for UploadURLRequest.
type UploadURLRequest struct {
	ContentType string     `json:"content_type"`
	Filename    string     `json:"filename"`
	Kind        ObjectKind `json:"kind"`
}

// WebhookAck defines model for WebhookAck.
type WebhookAck struct {
	Applied bool   `json:"applied"`
	Event   string `json:"event"`
}

// IdPath defines model for IdPath.
type IdPath = openapi_types.UUID

// Limit defines model for Limit.
type Limit = int

// Offset defines model for Offset.
type Offset = int

// ResourceIdPath defines model for ResourceIdPath.
type ResourceIdPath = openapi_types.UUID

// HandleUserWebhookJSONBody defines parameters for HandleUserWebhook.
type HandleUserWebhookJSONBody = map[string]interface{}

// HandleUserWebhookParams defines parameters for HandleUserWebhook.
type HandleUserWebhookParams struct {
	XWebhookSignature *string `json:"X-Webhook-Signature,omitempty"`
}

// ListParentsParams defines parameters for ListParents.
type ListParentsParams struct {
	Q      *string `form:"q,omitempty" json:"q,omitempty"`
	Limit  *Limit  `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListAdminsParams defines parameters for ListAdmins.
type ListAdminsParams struct {
	Limit  *Limit  `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListResourcesParams defines parameters for ListResources.
type ListResourcesParams struct {
	Q             *string                   `form:"q,omitempty" json:"q,omitempty"`
	Category      *[]Category               `form:"category,omitempty" json:"category,omitempty"`
	AgeGroup      *[]AgeGroup               `form:"age_group,omitempty" json:"age_group,omitempty"`
	LabelId       *[]openapi_types.UUID     `form:"label_id,omitempty" json:"label_id,omitempty"`
	ResourceType  *[]ResourceType           `form:"resource_type,omitempty" json:"resource_type,omitempty"`
	HostingType   *HostingType              `form:"hosting_type,omitempty" json:"hosting_type,omitempty"`
	Language      *string                   `form:"language,omitempty" json:"language,omitempty"`
	MinTimeToRead *int                      `form:"min_time_to_read,omitempty" json:"min_time_to_read,omitempty"`
	MaxTimeToRead *int                      `form:"max_time_to_read,omitempty" json:"max_time_to_read,omitempty"`
	CreatedAfter  *time.Time                `form:"created_after,omitempty" json:"created_after,omitempty"`
	CreatedBefore *time.Time                `form:"created_before,omitempty" json:"created_before,omitempty"`
	CollectionId  *openapi_types.UUID       `form:"collection_id,omitempty" json:"collection_id,omitempty"`
	Bookmarked    *bool                     `form:"bookmarked,omitempty" json:"bookmarked,omitempty"`
	Sort          *ListResourcesParamsSort  `form:"sort,omitempty" json:"sort,omitempty"`
	Order         *ListResourcesParamsOrder `form:"order,omitempty" json:"order,omitempty"`
	Limit         *Limit                    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset        *Offset                   `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListResourcesParamsSort defines parameters for ListResources.
type ListResourcesParamsSort string

// ListResourcesParamsOrder defines parameters for ListResources.
type ListResourcesParamsOrder string

// GetPopularResourcesParams defines parameters for GetPopularResources.
type GetPopularResourcesParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetDownloadURLParams defines parameters for GetDownloadURL.
type GetDownloadURLParams struct {
	Kind ObjectKind `form:"kind" json:"kind"`
}

// ListLabelsParams defines parameters for ListLabels.
type ListLabelsParams struct {
	Category *Category `form:"category,omitempty" json:"category,omitempty"`
}

// ListResourceLabelsParams defines parameters for ListResourceLabels.
type ListResourceLabelsParams struct {
	ResourceId *openapi_types.UUID `form:"resource_id,omitempty" json:"resource_id,omitempty"`
}

// ListExternalResourcesParams defines parameters for ListExternalResources.
type ListExternalResourcesParams struct {
	Limit  *Limit  `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListMyResourceViewsParams defines parameters for ListMyResourceViews.
type ListMyResourceViewsParams struct {
	Limit  *Limit  `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListAdminLogsParams defines parameters for ListAdminLogs.
type ListAdminLogsParams struct {
	AdminId *openapi_types.UUID `form:"admin_id,omitempty" json:"admin_id,omitempty"`
	Action  *string             `form:"action,omitempty" json:"action,omitempty"`
	Limit   *Limit              `form:"limit,omitempty" json:"limit,omitempty"`
	Offset  *Offset             `form:"offset,omitempty" json:"offset,omitempty"`
}

// UpdateMeJSONRequestBody defines body for UpdateMe for application/json ContentType.
type UpdateMeJSONRequestBody = ParentUpdate

// AddBookmarkJSONRequestBody defines body for AddBookmark for application/json ContentType.
type AddBookmarkJSONRequestBody = ResourceRef

// CreateAdminJSONRequestBody defines body for CreateAdmin for application/json ContentType.
type CreateAdminJSONRequestBody = AdminCreate

// CreateResourceJSONRequestBody defines body for CreateResource for application/json ContentType.
type CreateResourceJSONRequestBody = ResourceCreate

// UpdateResourceJSONRequestBody defines body for UpdateResource for application/json ContentType.
type UpdateResourceJSONRequestBody = ResourceUpdate

// CreateUploadURLJSONRequestBody defines body for CreateUploadURL for application/json ContentType.
type CreateUploadURLJSONRequestBody = UploadURLRequest

// CreateLabelJSONRequestBody defines body for CreateLabel for application/json ContentType.
type CreateLabelJSONRequestBody = LabelCreate

// UpdateLabelJSONRequestBody defines body for UpdateLabel for application/json ContentType.
type UpdateLabelJSONRequestBody = LabelUpdate

// CreateResourceLabelJSONRequestBody defines body for CreateResourceLabel for application/json ContentType.
type CreateResourceLabelJSONRequestBody = ResourceLabelCreate

// CreateCollectionJSONRequestBody defines body for CreateCollection for application/json ContentType.
type CreateCollectionJSONRequestBody = CollectionCreate

// UpdateCollectionJSONRequestBody defines body for UpdateCollection for application/json ContentType.
type UpdateCollectionJSONRequestBody = CollectionUpdate

// AddCollectionItemJSONRequestBody defines body for AddCollectionItem for application/json ContentType.
type AddCollectionItemJSONRequestBody = ResourceRef

// PutExternalResourceJSONRequestBody defines body for PutExternalResource for application/json ContentType.
type PutExternalResourceJSONRequestBody = ExternalResourceUpsert

// RecordResourceViewJSONRequestBody defines body for RecordResourceView for application/json ContentType.
type RecordResourceViewJSONRequestBody = ResourceRef

// CreateAdminLogJSONRequestBody defines body for CreateAdminLog for application/json ContentType.
type CreateAdminLogJSONRequestBody = AdminLogCreate
