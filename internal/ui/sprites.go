package ui

// spriteArt maps a monster's asset key to its sprite. '#' cells take the
// monster's glyph and spaces are transparent.
var spriteArt = map[string][spriteHeight]string{
	"IGUANIGNITE": {" ,#, ", "<###>", " ^ ^ "},
	"CARNODUSK":   {"/#^#\\", "|###|", " V V "},
	"AQUAVALOR":   {" ~#~ ", "(###)", " ~ ~ "},
	"FROSTSABER":  {" *#* ", "/###\\", " ' ' "},
}

// blockSprite is drawn for assets without art.
var blockSprite = [spriteHeight]string{"#####", "#####", "#####"}

// sprite returns the art for an asset key.
func sprite(asset string) [spriteHeight]string {
	if art, ok := spriteArt[asset]; ok {
		return art
	}
	return blockSprite
}
