package treeval

import (
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
)

// JSONLoad decodes the wrapped string as JSON text and returns a new node
// wrapping the decoded structure, path extended with [JSON(Load)]. A null
// value yields a new null node at the extended path; a non-string value is
// a type error; a decode failure is a parse error carrying the decoder
// message.
func (n *Node) JSONLoad() *Node {
	const op = "Node.JSONLoad"
	if n.err != nil {
		return n
	}
	if n.IsNull() {
		return n.newChild(nil, "[JSON(Load)]")
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	var decoded any
	if err := json.Unmarshal([]byte(n.value.(string)), &decoded); err != nil {
		return n.fail(checkerr.NewParseError(op, n.path, "decoding JSON text").WithCause(err))
	}
	return n.newChild(decoded, "[JSON(Load)]")
}

// JSONSave encodes the wrapped value as JSON text and returns a new node
// wrapping the encoded string, path extended with [JSON(Save)]. An
// unencodable type or value (a channel, a reference cycle) is a type
// error; any other encoder failure is a general error.
func (n *Node) JSONSave() *Node {
	const op = "Node.JSONSave"
	if n.err != nil {
		return n
	}
	data, err := json.Marshal(n.value)
	if err != nil {
		var typeErr *json.UnsupportedTypeError
		var valueErr *json.UnsupportedValueError
		if errors.As(err, &typeErr) || errors.As(err, &valueErr) {
			return n.fail(checkerr.NewTypeError(op, n.path, "value is not JSON-encodable").WithCause(err))
		}
		return n.fail(checkerr.NewGeneralError(op, n.path, "encoding JSON text").WithCause(err))
	}
	return n.newChild(string(data), "[JSON(Save)]")
}

// YAMLLoad decodes the wrapped string as YAML and returns a new node
// wrapping the decoded structure, path extended with [YAML(Load)]. The
// null, type and parse error behavior matches JSONLoad.
func (n *Node) YAMLLoad() *Node {
	const op = "Node.YAMLLoad"
	if n.err != nil {
		return n
	}
	if n.IsNull() {
		return n.newChild(nil, "[YAML(Load)]")
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	var decoded any
	if err := yaml.Unmarshal([]byte(n.value.(string)), &decoded); err != nil {
		return n.fail(checkerr.NewParseError(op, n.path, "decoding YAML text").WithCause(err))
	}
	return n.newChild(decoded, "[YAML(Load)]")
}

// YAMLSave encodes the wrapped value as YAML text and returns a new node
// wrapping the encoded string, path extended with [YAML(Save)].
func (n *Node) YAMLSave() *Node {
	const op = "Node.YAMLSave"
	if n.err != nil {
		return n
	}
	data, err := marshalYAML(n.value)
	if err != nil {
		if strings.Contains(err.Error(), "cannot marshal type") {
			return n.fail(checkerr.NewTypeError(op, n.path, "value is not YAML-encodable").WithCause(err))
		}
		return n.fail(checkerr.NewGeneralError(op, n.path, "encoding YAML text").WithCause(err))
	}
	return n.newChild(string(data), "[YAML(Save)]")
}

// marshalYAML wraps yaml.Marshal, converting its panics on unencodable
// values into errors.
func marshalYAML(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("yaml: encoder panic")
		}
	}()
	return yaml.Marshal(v)
}
