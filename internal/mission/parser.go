package mission

import (
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Document is a whole mission: the grid size followed by any number of
// robots, each a pose line and an instruction line.
//
//	5 3
//	1 1 E
//	RFRFRFRF
type Document struct {
	Size   *Size        `parser:"EOL* @@"`
	Robots []*RobotSpec `parser:"@@*"`
}

type Size struct {
	Pos    lexer.Position
	Width  Decimal `parser:"@Int"`
	Height Decimal `parser:"@Int EOL+"`
}

type RobotSpec struct {
	Pose     *Pose     `parser:"@@"`
	Commands *Commands `parser:"@@"`
}

type Pose struct {
	Pos     lexer.Position
	X       Decimal `parser:"@Int"`
	Y       Decimal `parser:"@Int"`
	Heading string  `parser:"@Ident EOL+"`
}

type Commands struct {
	Pos  lexer.Position
	Text string `parser:"@Ident EOL+"`
}

// Decimal is a base 10 integer. Leading zeros are padding, not an octal
// prefix.
type Decimal int

func (d *Decimal) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*d = Decimal(n)
	return nil
}

// Every line ends in EOL, so a mission cannot be folded onto fewer lines.
var missionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var (
	documentParser = build[Document]()
	sizeParser     = build[Size]()
	poseParser     = build[Pose]()
	commandsParser = build[Commands]()
)

func build[G any]() *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(missionLexer),
		participle.Elide("Whitespace"),
	)
}

// terminated makes sure the final line of the input ends in a newline.
func terminated(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Parse reads a mission document and validates it against limits.
// Nothing is simulated until the whole document is known to be good.
func Parse(name, data string, limits Limits) (*Plan, error) {
	doc, err := documentParser.ParseString(name, terminated(data))
	if err != nil {
		return nil, err
	}
	return doc.Plan(limits)
}

// Load parses the mission document stored at path.
func Load(path string, limits Limits) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data), limits)
}

// ParseSize parses a single grid size line such as "5 3".
func ParseSize(line string, limits Limits) (width, height int, err error) {
	s, err := sizeParser.ParseString("size", terminated(line))
	if err != nil {
		return 0, 0, err
	}
	if err := s.check(limits); err != nil {
		return 0, 0, err
	}
	return int(s.Width), int(s.Height), nil
}

// ParsePose parses a single robot pose line such as "1 1 E".
func ParsePose(line string, limits Limits) (Order, error) {
	p, err := poseParser.ParseString("pose", terminated(line))
	if err != nil {
		return Order{}, err
	}
	var o Order
	if err := p.resolve(&o, limits); err != nil {
		return Order{}, err
	}
	return o, nil
}

// ParseCommands parses a single instruction line such as "RFRFRFRF"
// into the program of o.
func ParseCommands(line string, o *Order, limits Limits) error {
	c, err := commandsParser.ParseString("instructions", terminated(line))
	if err != nil {
		return err
	}
	return c.resolve(o, limits)
}
