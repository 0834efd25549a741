package vtid

// Vt52 identifies a VT52-mode escape sequence. VT52 has no intermediates
// or private markers, so unlike ID a single byte is enough: the letter
// immediately following ESC.
type Vt52 byte

// Recognized VT52 ids (spec.md §4.1.4).
const (
	Vt52CursorUp             Vt52 = 'A'
	Vt52CursorDown           Vt52 = 'B'
	Vt52CursorRight          Vt52 = 'C'
	Vt52CursorLeft           Vt52 = 'D'
	Vt52EnterGraphicsMode    Vt52 = 'F'
	Vt52ExitGraphicsMode     Vt52 = 'G'
	Vt52CursorToHome         Vt52 = 'H'
	Vt52ReverseLineFeed      Vt52 = 'I'
	Vt52EraseToEndOfScreen   Vt52 = 'J'
	Vt52EraseToEndOfLine     Vt52 = 'K'
	Vt52DirectCursorAddress  Vt52 = 'Y'
	Vt52Identify             Vt52 = 'Z'
	Vt52EnterAlternateKeypad Vt52 = '='
	Vt52ExitAlternateKeypad  Vt52 = '>'
	Vt52ExitVt52Mode         Vt52 = '<'
)
