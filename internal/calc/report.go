package calc

import "bigcalc/internal/bignum"

// Rendering holds both textual forms of a value.
type Rendering struct {
	Decimal string `json:"decimal" msgpack:"decimal"`
	BaseM   string `json:"base_m" msgpack:"base_m"`
}

// Render returns both renderings of x.
func Render(x bignum.Int) Rendering {
	return Rendering{Decimal: x.String(), BaseM: x.BaseM()}
}

// Row is the outcome of one operation in a Report.
type Row struct {
	Op     Op         `json:"-" msgpack:"-"`
	Symbol string     `json:"op" msgpack:"op"`
	Name   string     `json:"name" msgpack:"name"`
	Result *Rendering `json:"result,omitempty" msgpack:"result,omitempty"`
	Error  string     `json:"error,omitempty" msgpack:"error,omitempty"`

	Value bignum.Int `json:"-" msgpack:"-"`
	Err   error      `json:"-" msgpack:"-"`
}

// Report is the full set of results for an operand pair.
type Report struct {
	A    Rendering `json:"a" msgpack:"a"`
	B    Rendering `json:"b" msgpack:"b"`
	Rows []Row     `json:"results" msgpack:"results"`

	Left, Right bignum.Int `json:"-" msgpack:"-"`
}

// NewReport runs all four operations on a and b. A failing operation (only
// division by zero can fail) is recorded on its row; the report itself never
// fails.
func NewReport(a, b bignum.Int) Report {
	rep := Report{
		A:     Render(a),
		B:     Render(b),
		Rows:  make([]Row, 0, len(Ops)),
		Left:  a,
		Right: b,
	}
	for _, op := range Ops {
		row := Row{Op: op, Symbol: op.String(), Name: op.Name()}
		v, err := Apply(op, a, b)
		if err != nil {
			row.Err = err
			row.Error = err.Error()
		} else {
			r := Render(v)
			row.Value = v
			row.Result = &r
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}
