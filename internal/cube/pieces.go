package cube

/*
A piece can be a corner, edge or centre. A piece is represented by an
index in a specific order, and that same index doubles as a position:
"the piece currently at position p" uses p both ways.

Corners have the order UBL, UFL, UFR, UBR, DBL, DFL, DFR, DBR.
Edges have the order UB, UL, UF, UR, BL, FL, FR, BR, DB, DL, DF, DR.
Centres have the order U, L, F, R, B, D.
*/

// Corner identifies one of the cube's eight corner positions.
type Corner int

const (
	CornerUBL Corner = iota
	CornerUFL
	CornerUFR
	CornerUBR
	CornerDBL
	CornerDFL
	CornerDFR
	CornerDBR
)

var cornerNames = [8]string{"UBL", "UFL", "UFR", "UBR", "DBL", "DFL", "DFR", "DBR"}

func (c Corner) String() string { return cornerNames[c] }

// Edge identifies one of the cube's twelve edge positions.
type Edge int

const (
	EdgeUB Edge = iota
	EdgeUL
	EdgeUF
	EdgeUR
	EdgeBL
	EdgeFL
	EdgeFR
	EdgeBR
	EdgeDB
	EdgeDL
	EdgeDF
	EdgeDR
)

var edgeNames = [12]string{"UB", "UL", "UF", "UR", "BL", "FL", "FR", "BR", "DB", "DL", "DF", "DR"}

func (e Edge) String() string { return edgeNames[e] }

// Centre identifies one of the cube's six centre positions.
type Centre int

const (
	CentreU Centre = iota
	CentreL
	CentreF
	CentreR
	CentreB
	CentreD
)

var centreNames = [6]string{"U", "L", "F", "R", "B", "D"}

func (c Centre) String() string { return centreNames[c] }

/*
Flip indicates the orientation of an edge. An edge's orientation is
"good" relative to a particular axis if it can be moved into the
solved position with no quarter turns about that axis, and "bad"
otherwise. We arbitrarily use the FB axis as the axis of reference.
*/
type Flip int

const (
	FlipGood Flip = iota
	FlipBad
)

// Flipped returns the opposite flip state.
func (f Flip) Flipped() Flip {
	return 1 - f
}

/*
Twist indicates the orientation of a corner. A corner's orientation is
"good" relative to a particular axis if it can be moved into the
solved position using half turns about any axis and quarter turns
about the axis of reference only. It is "clockwise" if a clockwise
quarter turn about another axis is needed to bring it to good, and
"anticlockwise" otherwise. We arbitrarily use the UD axis as the axis
of reference.
*/
type Twist int

const (
	TwistNone Twist = iota
	TwistCW
	TwistACW
)

// TwistBy composes two twists; composition is addition modulo 3.
func (t Twist) TwistBy(amount Twist) Twist {
	return Twist((int(t) + int(amount)) % 3)
}

// Swap names two positions whose contents should be exchanged.
type Swap struct {
	A, B int
}

// cornerTwist pairs a corner position with the twist to add there.
type cornerTwist struct {
	Pos    int
	Amount Twist
}
