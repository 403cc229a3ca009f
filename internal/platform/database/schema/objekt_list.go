package schema

// ObjektListTable represents the 'objekt_list' table
type ObjektListTable struct {
	Table      string
	ID         string
	UserID     string
	Name       string
	Slug       string
	Visibility string
	CreatedAt  string
	UpdatedAt  string
}

// ObjektList is the schema definition for objekt_list
var ObjektList = ObjektListTable{
	Table:      "objekt_list",
	ID:         "id",
	UserID:     "user_id",
	Name:       "name",
	Slug:       "slug",
	Visibility: "visibility",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

// ObjektListEntryTable represents the 'objekt_list_entry' table
type ObjektListEntryTable struct {
	Table        string
	ID           string
	ListID       string
	CollectionID string
	CreatedAt    string
}

// ObjektListEntry is the schema definition for objekt_list_entry
var ObjektListEntry = ObjektListEntryTable{
	Table:        "objekt_list_entry",
	ID:           "id",
	ListID:       "list_id",
	CollectionID: "collection_id",
	CreatedAt:    "created_at",
}
