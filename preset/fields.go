package preset

type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldLevel
	FieldStartTag

	fieldCount
)

const UpgradesPropertyName = "Upgrades_12_339EDA2D4B022358B32C3984E9FAE5F1"

/* Property names carry the struct member index and GUID the editor assigned */
var fieldPropertyNames = [fieldCount]string{
	FieldTitle:    "Title_18_8D403C334BBBCC29B73D3CACCDAF0A08",
	FieldAuthor:   "Author_6_5E436BFF41A27B8B13653A8CEC5D15A6",
	FieldLevel:    "LevelName_2_392769FD4066EFFA0CC1F99E8D749886",
	FieldStartTag: "PlayerStartTag_5_7797C3C742DE3A0B8EEE189EDBEF3683",
}

var fieldOptionNames = [fieldCount]string{
	FieldTitle:    "title",
	FieldAuthor:   "author",
	FieldLevel:    "level",
	FieldStartTag: "start_tag",
}

var fieldByName = make(map[string]Field, fieldCount)

func init() {
	for i, n := range fieldPropertyNames {
		fieldByName[n] = Field(i)
	}
}

func FieldByName(name string) (Field, bool) {
	f, ok := fieldByName[name]
	return f, ok
}

func (f Field) PropertyName() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldPropertyNames[f]
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldOptionNames[f]
}
