package render

// Spacing constants in points.
const (
	headingGapAfter  = 4.0
	underlineGap     = 4.0
	underlineWidth   = 1.0
	orphanLines      = 2
	paragraphGap     = 6.0
	bulletGap        = 2.0
	bulletIndent     = 14.0
	bulletMarkerGap  = 4.0
	maxBulletIndent  = 6
	tableCellPadding = 4.0
	tableMinWeight   = 3
	tableGap         = 10.0
	tableBorderWidth = 0.5
	badgeHeight      = 16.0
	badgePadX        = 6.0
	statsWidth       = 130.0
	statsHeight      = 52.0
	statsPad         = 8.0
	statsBarWidth    = 4.0
	flowGap          = 6.0
	codePad          = 6.0
	codeGap          = 8.0
	codeTabWidth     = 4
	ruleHeight       = 12.0
	ruleWidth        = 0.75
	headerBandPad    = 18.0
	headerGap        = 18.0
	subtitleGap      = 4.0
	footerGap        = 12.0
)

// headingGapBefore is the space above a heading by level, skipped at the
// top of a page.
var headingGapBefore = [3]float64{14, 10, 8}

const bulletMarker = "•"

const ellipsis = "..."
