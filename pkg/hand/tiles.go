package hand

// Manzu
var (
	AkadoraMan = Tile{Manzu, 0}
	IiMan      = Tile{Manzu, 1}
	RyanMan    = Tile{Manzu, 2}
	SanMan     = Tile{Manzu, 3}
	SuuMan     = Tile{Manzu, 4}
	UuMan      = Tile{Manzu, 5}
	RouMan     = Tile{Manzu, 6}
	ChiiMan    = Tile{Manzu, 7}
	PaaMan     = Tile{Manzu, 8}
	KyuuMan    = Tile{Manzu, 9}
)

// Pinzu
var (
	AkadoraPin = Tile{Pinzu, 0}
	IiPin      = Tile{Pinzu, 1}
	RyanPin    = Tile{Pinzu, 2}
	SanPin     = Tile{Pinzu, 3}
	SuuPin     = Tile{Pinzu, 4}
	UuPin      = Tile{Pinzu, 5}
	RouPin     = Tile{Pinzu, 6}
	ChiiPin    = Tile{Pinzu, 7}
	PaaPin     = Tile{Pinzu, 8}
	KyuuPin    = Tile{Pinzu, 9}
)

// Souzu
var (
	AkadoraSou = Tile{Souzu, 0}
	IiSou      = Tile{Souzu, 1}
	RyanSou    = Tile{Souzu, 2}
	SanSou     = Tile{Souzu, 3}
	SuuSou     = Tile{Souzu, 4}
	UuSou      = Tile{Souzu, 5}
	RouSou     = Tile{Souzu, 6}
	ChiiSou    = Tile{Souzu, 7}
	PaaSou     = Tile{Souzu, 8}
	KyuuSou    = Tile{Souzu, 9}
)

// Honors
var (
	Ton   = Tile{Honor, 1}
	Nan   = Tile{Honor, 2}
	Shaa  = Tile{Honor, 3}
	Pei   = Tile{Honor, 4}
	Haku  = Tile{Honor, 5}
	Hatsu = Tile{Honor, 6}
	Chun  = Tile{Honor, 7}
)

// AnyTile is the face-down tile.
var AnyTile = Tile{Any, 0}

// AllTiles lists every valid tile, suits first, then honors, then AnyTile.
var AllTiles = [38]Tile{
	AkadoraMan, IiMan, RyanMan, SanMan, SuuMan, UuMan, RouMan, ChiiMan, PaaMan, KyuuMan,
	AkadoraPin, IiPin, RyanPin, SanPin, SuuPin, UuPin, RouPin, ChiiPin, PaaPin, KyuuPin,
	AkadoraSou, IiSou, RyanSou, SanSou, SuuSou, UuSou, RouSou, ChiiSou, PaaSou, KyuuSou,
	Ton, Nan, Shaa, Pei, Haku, Hatsu, Chun,
	AnyTile,
}
