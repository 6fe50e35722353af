package logic

import (
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// ParseYAML reads a formula from its document form. A literal is a plain
// string; a gate is a mapping with an "operator" and a list of "values":
//
//	operator: and
//	values:
//	- a
//	- {operator: not, values: [b]}
//
// Operator names are matched case-insensitively. The numeric codes
// 0 (and), 1 (or) and 2 (not) are accepted too. JSON input works as well,
// every JSON document being a YAML document.
//
// The formula is validated before being returned.
func ParseYAML(r io.Reader) (Formula, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "could not decode formula document")
	}
	f, err := fromDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteYAML writes the document form of f on w, in the layout ParseYAML
// reads. The formula is validated first.
func WriteYAML(w io.Writer, f Formula) error {
	if err := Validate(f); err != nil {
		return err
	}
	out, err := yaml.Marshal(toDoc(f))
	if err != nil {
		return errors.Wrap(err, "could not encode formula document")
	}
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "could not write formula document")
	}
	return nil
}

func fromDoc(doc interface{}) (Formula, error) {
	switch doc := doc.(type) {
	case string:
		return Lit(doc), nil
	case map[string]interface{}:
		rawOp, ok := doc["operator"]
		if !ok {
			return nil, errors.New("gate document lacks an operator")
		}
		op, err := operatorFromDoc(rawOp)
		if err != nil {
			return nil, err
		}
		rawValues, ok := doc["values"]
		if !ok {
			return nil, errors.Errorf("%s gate document lacks values", op)
		}
		values, ok := rawValues.([]interface{})
		if !ok {
			return nil, errors.Errorf("values of %s gate must be a list, got %T", op, rawValues)
		}
		subs := make([]Formula, len(values))
		for i, value := range values {
			sub, err := fromDoc(value)
			if err != nil {
				return nil, err
			}
			subs[i] = sub
		}
		return &Gate{Op: op, Subs: subs}, nil
	default:
		return nil, errors.Errorf("formula document must be a string or a mapping, got %T", doc)
	}
}

func operatorFromDoc(raw interface{}) (Operator, error) {
	switch raw := raw.(type) {
	case string:
		switch strings.ToLower(raw) {
		case "and":
			return OpAnd, nil
		case "or":
			return OpOr, nil
		case "not":
			return OpNot, nil
		default:
			return 0, errors.Errorf("unknown operator %q", raw)
		}
	case uint64:
		return operatorFromCode(int(raw))
	case int64:
		return operatorFromCode(int(raw))
	case int:
		return operatorFromCode(raw)
	default:
		return 0, errors.Errorf("operator must be a name or a numeric code, got %T", raw)
	}
}

func operatorFromCode(code int) (Operator, error) {
	switch code {
	case 0:
		return OpAnd, nil
	case 1:
		return OpOr, nil
	case 2:
		return OpNot, nil
	default:
		return 0, errors.Errorf("unknown operator code %d", code)
	}
}

func toDoc(f Formula) interface{} {
	switch f := f.(type) {
	case Lit:
		return string(f)
	case *Gate:
		values := make([]interface{}, len(f.Subs))
		for i, sub := range f.Subs {
			values[i] = toDoc(sub)
		}
		return yaml.MapSlice{
			{Key: "operator", Value: f.Op.String()},
			{Key: "values", Value: values},
		}
	default:
		panic("invalid formula type")
	}
}
