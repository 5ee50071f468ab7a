package fonts

// AFM data for Courier font family.
// Data source: Adobe Font Metrics (AFM) files for Standard 14 fonts.
// Courier is monospaced - all characters have width 600.

// courierMetrics contains metrics for Courier (regular).
var courierMetrics = &FontMetrics{
	Ascender:     629,
	Descender:    -157,
	CapHeight:    562,
	XHeight:      426,
	DefaultWidth: 600, // Monospace - all chars are 600
	CharWidths:   courierWidths,
}

// courierBoldMetrics contains metrics for Courier-Bold.
var courierBoldMetrics = &FontMetrics{
	Ascender:     629,
	Descender:    -157,
	CapHeight:    562,
	XHeight:      439,
	DefaultWidth: 600,
	CharWidths:   courierWidths, // Same widths as regular
}

// courierObliqueMetrics contains metrics for Courier-Oblique.
var courierObliqueMetrics = &FontMetrics{
	Ascender:     629,
	Descender:    -157,
	CapHeight:    562,
	XHeight:      426,
	DefaultWidth: 600,
	CharWidths:   courierWidths, // Same widths as regular
}

// courierBoldObliqueMetrics contains metrics for Courier-BoldOblique.
var courierBoldObliqueMetrics = &FontMetrics{
	Ascender:     629,
	Descender:    -157,
	CapHeight:    562,
	XHeight:      439,
	DefaultWidth: 600,
	CharWidths:   courierWidths, // Same widths as regular
}

// courierWidths contains character widths for Courier family.
// All Courier variants have the same width (monospace).
// All printable characters are 600 units wide.
//
//nolint:gochecknoglobals,dupl // Font metrics are intentionally global constants; dupl expected for AFM data
var courierWidths = map[rune]int{
	' ': 600, '!': 600, '"': 600, '#': 600, '$': 600, '%': 600, '&': 600, '\'': 600,
	'(': 600, ')': 600, '*': 600, '+': 600, ',': 600, '-': 600, '.': 600, '/': 600,
	'0': 600, '1': 600, '2': 600, '3': 600, '4': 600, '5': 600, '6': 600, '7': 600,
	'8': 600, '9': 600, ':': 600, ';': 600, '<': 600, '=': 600, '>': 600, '?': 600,
	'@': 600, 'A': 600, 'B': 600, 'C': 600, 'D': 600, 'E': 600, 'F': 600, 'G': 600,
	'H': 600, 'I': 600, 'J': 600, 'K': 600, 'L': 600, 'M': 600, 'N': 600, 'O': 600,
	'P': 600, 'Q': 600, 'R': 600, 'S': 600, 'T': 600, 'U': 600, 'V': 600, 'W': 600,
	'X': 600, 'Y': 600, 'Z': 600, '[': 600, '\\': 600, ']': 600, '^': 600, '_': 600,
	'`': 600, 'a': 600, 'b': 600, 'c': 600, 'd': 600, 'e': 600, 'f': 600, 'g': 600,
	'h': 600, 'i': 600, 'j': 600, 'k': 600, 'l': 600, 'm': 600, 'n': 600, 'o': 600,
	'p': 600, 'q': 600, 'r': 600, 's': 600, 't': 600, 'u': 600, 'v': 600, 'w': 600,
	'x': 600, 'y': 600, 'z': 600, '{': 600, '|': 600, '}': 600, '~': 600,
	'¡': 600, '¢': 600, '£': 600, '¤': 600, '¥': 600, '¦': 600, '§': 600, '¨': 600,
	'©': 600, 'ª': 600, '«': 600, '¬': 600, '®': 600, '¯': 600,
	'°': 600, '±': 600, '²': 600, '³': 600, '´': 600, 'µ': 600, '¶': 600, '·': 600,
	'¸': 600, '¹': 600, 'º': 600, '»': 600, '¼': 600, '½': 600, '¾': 600, '¿': 600,
	'À': 600, 'Á': 600, 'Â': 600, 'Ã': 600, 'Ä': 600, 'Å': 600, 'Æ': 600, 'Ç': 600,
	'È': 600, 'É': 600, 'Ê': 600, 'Ë': 600, 'Ì': 600, 'Í': 600, 'Î': 600, 'Ï': 600,
	'Ð': 600, 'Ñ': 600, 'Ò': 600, 'Ó': 600, 'Ô': 600, 'Õ': 600, 'Ö': 600, '×': 600,
	'Ø': 600, 'Ù': 600, 'Ú': 600, 'Û': 600, 'Ü': 600, 'Ý': 600, 'Þ': 600, 'ß': 600,
	'à': 600, 'á': 600, 'â': 600, 'ã': 600, 'ä': 600, 'å': 600, 'æ': 600, 'ç': 600,
	'è': 600, 'é': 600, 'ê': 600, 'ë': 600, 'ì': 600, 'í': 600, 'î': 600, 'ï': 600,
	'ð': 600, 'ñ': 600, 'ò': 600, 'ó': 600, 'ô': 600, 'õ': 600, 'ö': 600, '÷': 600,
	'ø': 600, 'ù': 600, 'ú': 600, 'û': 600, 'ü': 600, 'ý': 600, 'þ': 600, 'ÿ': 600,
	'Œ': 600, 'œ': 600, 'Š': 600, 'š': 600, 'Ÿ': 600, 'Ž': 600, 'ž': 600,
	'ƒ': 600, 'ˆ': 600, '˜': 600, '–': 600, '—': 600, 0x2018: 600, 0x2019: 600,
	0x201A: 600, 0x201C: 600, 0x201D: 600, 0x201E: 600, '†': 600, '‡': 600, '•': 600, '…': 600,
	'‰': 600, '‹': 600, '›': 600, '€': 600, '™': 600,
}
