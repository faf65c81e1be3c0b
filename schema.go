package ldtk

// Raw LDtk JSON structures. Only the fields this library consumes are
// declared; unknown fields are ignored by encoding/json. Field names follow
// the LDtk JSON schema, including the "__" prefix LDtk uses for
// editor-computed values.

// ProjectData is the root of an LDtk project file.
type ProjectData struct {
	Iid            string      `json:"iid"`
	ExternalLevels bool        `json:"externalLevels"`
	Levels         []Level     `json:"levels"`
	Worlds         []World     `json:"worlds"`
	Defs           Definitions `json:"defs"`
}

// World is one world in a multi-world project. Projects that predate
// multi-world layout leave Worlds empty and store levels at the root.
type World struct {
	Identifier string  `json:"identifier"`
	Iid        string  `json:"iid"`
	Levels     []Level `json:"levels"`
}

// Level is one discrete playable area.
//
// LayerInstances is nil both for JSON null and for an absent key; the
// distinction between "externally stored" and "malformed" is made by the
// project's externalLevels flag during resolution.
type Level struct {
	Identifier      string          `json:"identifier"`
	Iid             string          `json:"iid"`
	Uid             int             `json:"uid"`
	WorldX          int             `json:"worldX"`
	WorldY          int             `json:"worldY"`
	PxWid           int             `json:"pxWid"`
	PxHei           int             `json:"pxHei"`
	BgRelPath       string          `json:"bgRelPath"`
	ExternalRelPath string          `json:"externalRelPath"`
	LayerInstances  []LayerInstance `json:"layerInstances"`
}

// Definitions holds the project-wide definition tables.
type Definitions struct {
	Tilesets []TilesetDefinition `json:"tilesets"`
	Entities []EntityDefinition  `json:"entities"`
}

// TilesetDefinition describes a source image sliced into a fixed grid of
// same-size tiles. Exactly one of RelPath and EmbedAtlas is meaningful for
// resolving an image; a definition with neither cannot be rendered and is
// skipped during resolution.
type TilesetDefinition struct {
	Uid          int    `json:"uid"`
	Identifier   string `json:"identifier"`
	RelPath      string `json:"relPath"`
	EmbedAtlas   string `json:"embedAtlas"`
	TileGridSize int    `json:"tileGridSize"`
	CWid         int    `json:"__cWid"`
	CHei         int    `json:"__cHei"`
}

// EntityDefinition declares an entity type and its default size.
type EntityDefinition struct {
	Uid        int    `json:"uid"`
	Identifier string `json:"identifier"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// Layer type strings as they appear in LayerInstance.Type.
const (
	LayerTypeIntGrid   = "IntGrid"
	LayerTypeEntities  = "Entities"
	LayerTypeTiles     = "Tiles"
	LayerTypeAutoLayer = "AutoLayer"
)

// LayerInstance is one layer's worth of placement data within a level.
type LayerInstance struct {
	Identifier      string           `json:"__identifier"`
	Type            string           `json:"__type"` // see the LayerType constants
	CWid            int              `json:"__cWid"`
	CHei            int              `json:"__cHei"`
	GridSize        int              `json:"__gridSize"`
	TilesetDefUid   *int             `json:"__tilesetDefUid"`
	IntGridCSV      []int            `json:"intGridCsv"`
	GridTiles       []TileInstance   `json:"gridTiles"`
	AutoLayerTiles  []TileInstance   `json:"autoLayerTiles"`
	EntityInstances []EntityInstance `json:"entityInstances"`
}

// TileInstance is one raw tile placement record. Immutable once read.
type TileInstance struct {
	Px  [2]int `json:"px"`  // pixel position within the layer
	Src [2]int `json:"src"` // pixel offset into the tileset image
	F   int    `json:"f"`   // flip code: 0=none, 1=horizontal, 2=vertical, 3=both
	T   int    `json:"t"`   // tile id within the tileset (unused here, kept for callers)
}

// EntityInstance is one raw entity placement record.
type EntityInstance struct {
	Identifier string              `json:"__identifier"`
	Iid        string              `json:"iid"`
	DefUid     int                 `json:"defUid"`
	Px         [2]int              `json:"px"`
	Width      int                 `json:"width"`
	Height     int                 `json:"height"`
	Pivot      [2]float64          `json:"__pivot"`
	Tile       *EntityInstanceTile `json:"__tile"`
}

// EntityInstanceTile is the optional tile crop shown for an entity in the
// editor. Its rectangle overrides the definition's implied source size.
type EntityInstanceTile struct {
	TilesetUid int    `json:"tilesetUid"`
	SrcRect    [4]int `json:"srcRect"` // x, y, w, h
}
