package unitops_test

import (
	"testing"

	"github.com/wofl/woflang"
	"github.com/wofl/woflang/testutils"
)

func TestUnitOps(t *testing.T) {
	cases := map[string]testutils.LineTestCase{
		"Attach": {
			Source: "5 m unit.attach",
			Want:   []woflang.Value{woflang.MakeInteger(5).WithUnit(woflang.Unit{Name: "m", Scale: 1})},
		},
		"Strip": {
			Source: "5 m unit.attach unit.strip",
			Want:   []woflang.Value{woflang.MakeInteger(5)},
		},
		"Name": {
			Source: "5 km unit.attach unit.name",
			Want:   []woflang.Value{woflang.MakeSymbol("km")},
		},
		"ConvertKmToM": {
			Source: "5 km unit.attach m unit.convert",
			Want:   []woflang.Value{woflang.MakeDouble(5000).WithUnit(woflang.Unit{Name: "m", Scale: 1})},
		},
		"ConvertMToKm": {
			Source: "2500 m unit.attach km unit.convert",
			Want:   []woflang.Value{woflang.MakeDouble(2.5).WithUnit(woflang.Unit{Name: "km", Scale: 1000})},
		},
		"ConvertMass": {
			Source: "1500 g unit.attach kg unit.convert",
			Want:   []woflang.Value{woflang.MakeDouble(1.5).WithUnit(woflang.Unit{Name: "kg", Scale: 1})},
		},
		"ConvertTime": {
			Source: "2 h unit.attach min unit.convert",
			Want:   []woflang.Value{woflang.MakeDouble(120).WithUnit(woflang.Unit{Name: "min", Scale: 60})},
		},
		"AttachUnknownUnit": {
			Source:  "5 furlongs unit.attach",
			WantErr: woflang.ErrTypeMismatch,
		},
		"ConvertDimensionMismatch": {
			Source:  "5 m unit.attach g unit.convert",
			WantErr: woflang.ErrTypeMismatch,
		},
		"ConvertUntagged": {
			Source:  "5 m unit.convert",
			WantErr: woflang.ErrTypeMismatch,
		},
		"NameUntagged": {
			Source:  "5 unit.name",
			WantErr: woflang.ErrTypeMismatch,
		},
		"AttachUnderflow": {
			Source:  "m unit.attach",
			WantErr: woflang.ErrStackUnderflow,
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc())
	}
}
