package nodes

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ohler55/ojg/oj"

	derrors "git.home.luguber.info/inful/nodedocs/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so messages point into the document.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads and parses the node document at path.
func Load(path string) ([]NodeDescription, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator.
	if err != nil {
		return nil, derrors.InputUnreadable(path, err)
	}
	list, err := Parse(data)
	if err != nil {
		if nde, ok := derrors.As(err); ok {
			return nil, nde.WithContext("path", path)
		}
		return nil, derrors.InputMalformed(path, err)
	}
	return list, nil
}

// Parse decodes a JSON array of node descriptions. Shape errors (invalid
// JSON, wrong value types) are returned as plain errors; missing required
// fields as validation errors.
func Parse(data []byte) ([]NodeDescription, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, err
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("top level: expected an array of nodes, got %s", kind(doc))
	}

	list := make([]NodeDescription, 0, len(items))
	for i, item := range items {
		n, err := decodeNode(item, fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, err
		}
		if err := Validate(n, i); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// Validate checks field presence on the node at index.
func Validate(n NodeDescription, index int) error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		// Namespace is "NodeDescription.inputs[0].name"; swap the type name for the index.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		return derrors.ValidationFailed(fmt.Sprintf("[%d].%s", index, field), fe.Tag()).
			WithContext("node", n.Name)
	}
	return derrors.InternalError("node validation failed", err)
}

func decodeNode(v any, at string) (NodeDescription, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return NodeDescription{}, fmt.Errorf("%s: expected an object, got %s", at, kind(v))
	}

	var (
		n   NodeDescription
		err error
	)
	if n.Name, err = stringField(obj, "name", at); err != nil {
		return n, err
	}
	if n.Description, err = stringField(obj, "description", at); err != nil {
		return n, err
	}
	if n.Image, err = stringField(obj, "image", at); err != nil {
		return n, err
	}
	if n.Inputs, err = portsField(obj, "inputs", at); err != nil {
		return n, err
	}
	if n.Outputs, err = portsField(obj, "outputs", at); err != nil {
		return n, err
	}
	return n, nil
}

func portsField(obj map[string]any, key, at string) ([]PortSpec, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s.%s: expected an array, got %s", at, key, kind(raw))
	}

	ports := make([]PortSpec, 0, len(items))
	for i, item := range items {
		where := fmt.Sprintf("%s.%s[%d]", at, key, i)
		pobj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected an object, got %s", where, kind(item))
		}
		var (
			p   PortSpec
			err error
		)
		if p.Name, err = stringField(pobj, "name", where); err != nil {
			return nil, err
		}
		if p.Description, err = stringField(pobj, "description", where); err != nil {
			return nil, err
		}
		if p.Type, err = stringField(pobj, "type", where); err != nil {
			return nil, err
		}
		ports = append(ports, p)
	}
	return ports, nil
}

// stringField reads obj[key]; absent and null both read as "".
func stringField(obj map[string]any, key, at string) (string, error) {
	raw, present := obj[key]
	if !present || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s.%s: expected a string, got %s", at, key, kind(raw))
	}
	return s, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
