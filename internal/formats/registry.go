package formats

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown loto format")

var (
	// Loto5Balls is the French loto since October 2008.
	Loto5Balls = &Format{
		Kind:        FiveBall,
		Name:        "5_boules",
		Description: "Loto format since 2008",
		MainCount:   5,
		BonusCount:  1,
		MaxMain:     49,
		MaxBonus:    10,
		MainPrefix:  ballPrefix,
		BonusPrefix: "numero_chance",
		DateKey:     dateKey,
		Whitelist:   regexp.MustCompile(`^boule_[1-5]_second_tirage`),
	}

	// Loto6Balls is the French loto before October 2008.
	Loto6Balls = &Format{
		Kind:        SixBall,
		Name:        "6_boules",
		Description: "Loto format before 2008",
		MainCount:   6,
		BonusCount:  1,
		MaxMain:     49,
		// The complementary ball is drawn from the same 49 balls.
		MaxBonus:    49,
		MainPrefix:  ballPrefix,
		BonusPrefix: "boule_complementaire",
		DateKey:     dateKey,
	}

	EuroMillions = &Format{
		Kind:        EuroStyle,
		Name:        "euromillion",
		Description: "EuroMillions",
		MainCount:   5,
		BonusCount:  2,
		MaxMain:     50,
		MaxBonus:    12,
		MainPrefix:  ballPrefix,
		BonusPrefix: "etoile_",
		DateKey:     dateKey,
	}
)

// Default is used when no format is selected.
var Default = Loto5Balls

// known is in classification priority order.
var known = []*Format{Loto5Balls, Loto6Balls, EuroMillions}

// All returns the known formats in classification order.
func All() []*Format {
	out := make([]*Format, len(known))
	copy(out, known)
	return out
}

func Names() []string {
	names := make([]string, len(known))
	for i, f := range known {
		names[i] = f.Name
	}
	return names
}

func ByName(name string) (*Format, error) {
	for _, f := range known {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
}

// Classify returns the first format claiming header.
func Classify(header []string) (*Format, bool) {
	for _, f := range known {
		if f.Claims(header) {
			return f, true
		}
	}
	return nil, false
}
