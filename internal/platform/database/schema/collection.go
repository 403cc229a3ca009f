package schema

// CollectionTable represents the 'collection' table
type CollectionTable struct {
	Table           string
	ID              string
	Slug            string
	Artist          string
	Season          string
	Member          string
	Class           string
	OnlineType      string
	CollectionNo    string
	FrontImage      string
	BackImage       string
	BackgroundColor string
	TextColor       string
	CreatedAt       string
	SearchVector    string
}

// Collection is the schema definition for collection
var Collection = CollectionTable{
	Table:           "collection",
	ID:              "id",
	Slug:            "slug",
	Artist:          "artist",
	Season:          "season",
	Member:          "member",
	Class:           "class",
	OnlineType:      "online_type",
	CollectionNo:    "collection_no",
	FrontImage:      "front_image",
	BackImage:       "back_image",
	BackgroundColor: "background_color",
	TextColor:       "text_color",
	CreatedAt:       "created_at",
	SearchVector:    "search_vector",
}

// Columns lists the selectable columns in scan order.
func (t CollectionTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Artist, t.Season, t.Member, t.Class, t.OnlineType,
		t.CollectionNo, t.FrontImage, t.BackImage, t.BackgroundColor, t.TextColor, t.CreatedAt,
	}
}
