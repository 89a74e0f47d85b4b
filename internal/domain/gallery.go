package domain

// CollectionFilters selects collections along three ANDed axes.
// Empty Status/Category slices match everything on that axis.
type CollectionFilters struct {
	Status   []CollectionStatus   // Match any of these statuses
	Category []CollectionCategory // Match any of these categories
	Search   string               // Case-insensitive substring over title or description
}

// CreateCollectionData carries the fields a caller supplies when creating
// a collection. PhotoCount and Starred are always initialized by the store.
type CreateCollectionData struct {
	Title       string
	Description string
	Status      CollectionStatus
	Category    CollectionCategory
	Password    string
}

// UpdateCollectionData is a partial patch for an existing collection.
// Nil pointer fields are left untouched; an omitted field cannot be
// distinguished from one explicitly set to nil at this layer.
type UpdateCollectionData struct {
	ID          string
	Title       *string
	Description *string
	Status      *CollectionStatus
	Category    *CollectionCategory
	Password    *string
}

// WorkspaceTab identifies a tab in the collection workspace panel
type WorkspaceTab string

const (
	TabPhotos   WorkspaceTab = "photos"
	TabDesign   WorkspaceTab = "design"
	TabSettings WorkspaceTab = "settings"
	TabActivity WorkspaceTab = "activity"
)

// Tabs lists the workspace tabs in display order
func Tabs() []WorkspaceTab {
	return []WorkspaceTab{TabPhotos, TabDesign, TabSettings, TabActivity}
}

// Label returns the display label for the tab
func (t WorkspaceTab) Label() string {
	switch t {
	case TabPhotos:
		return "Photos"
	case TabDesign:
		return "Design"
	case TabSettings:
		return "Settings"
	case TabActivity:
		return "Activity"
	default:
		return string(t)
	}
}
