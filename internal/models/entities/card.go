package entities

// CustomCard is the stored card customization row, one per user. Every field
// except the ID is nullable; an absent field means "use the default".
type CustomCard struct {
	ID                 int64   `db:"id"`
	Important          *string `db:"important"`
	Secondary          *string `db:"secondary"`
	Rank               *string `db:"rank"`
	Level              *string `db:"level"`
	Border             *string `db:"border"`
	Background         *string `db:"background"`
	ProgressForeground *string `db:"progress_foreground"`
	ProgressBackground *string `db:"progress_background"`
	Font               *string `db:"font"`
}
