package editor

import "github.com/ironsheep/host-bridge-mcp/internal/imaging"

// Small constructors for the JSON schemas of the command table.

func object(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]interface{} {
	p := map[string]interface{}{"type": typ}
	if description != "" {
		p["description"] = description
	}
	return p
}

func str(description string) map[string]interface{}     { return prop("string", description) }
func number(description string) map[string]interface{}  { return prop("number", description) }
func integer(description string) map[string]interface{} { return prop("integer", description) }
func boolean(description string) map[string]interface{} { return prop("boolean", description) }
func dict(description string) map[string]interface{}    { return prop("object", description) }

func list(itemType, description string) map[string]interface{} {
	p := prop("array", description)
	p["items"] = map[string]interface{}{"type": itemType}
	return p
}

func enum(description string, values ...string) map[string]interface{} {
	p := str(description)
	p["enum"] = values
	return p
}

// pixels is an image dimension bounded to what the heightmap generator accepts.
func pixels(description string) map[string]interface{} {
	p := integer(description)
	p["minimum"] = 1
	p["maximum"] = imaging.MaxHeightmapSize
	return p
}

// withDefault returns a copy of p advertising def as its default.
func withDefault(p map[string]interface{}, def interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out["default"] = def
	return out
}
