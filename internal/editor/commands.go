package editor

import (
	"fmt"

	"github.com/ironsheep/host-bridge-mcp/internal/imaging"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

// builder turns tool arguments into the command sent to the editor.
type builder func(a server.Args) (Command, error)

// field maps one tool argument onto one command key.
type field struct {
	key string
	arg string
	def interface{}
}

func arg(name string) field { return field{key: name, arg: name} }

// as sends the argument under a different command key.
func (f field) as(key string) field {
	f.key = key
	return f
}

// or sets the value used when the argument is absent.
func (f field) or(def interface{}) field {
	f.def = def
	return f
}

// fields builds a command from a fixed set of argument mappings. Arguments
// not listed are dropped.
func fields(cmd string, fs ...field) builder {
	return func(a server.Args) (Command, error) {
		c := Command{"cmd": cmd}
		for _, f := range fs {
			c[f.key] = a.Value(f.arg, f.def)
		}
		return c, nil
	}
}

// passthrough forwards every argument unchanged.
func passthrough(cmd string) builder {
	return func(a server.Args) (Command, error) {
		c := make(Command, len(a)+1)
		for k, v := range a {
			c[k] = v
		}
		c["cmd"] = cmd
		return c, nil
	}
}

func buildBackground(a server.Args) (Command, error) {
	color := a.Value("color", []interface{}{0, 0, 0})
	if hex, ok := color.(string); ok {
		rgb, err := imaging.HexToFloats(hex)
		if err != nil {
			return nil, err
		}
		color = rgb
	}
	return Command{
		"cmd":    "env_set_background",
		"mode":   a.Value("mode", nil),
		"color":  color,
		"energy": a.Value("energy", 1.0),
	}, nil
}

func buildManageFile(a server.Args) (Command, error) {
	if a.String("action", "") == "delete" {
		return Command{"cmd": "remove_file", "path": a.Value("path", nil)}, nil
	}
	if !a.Has("new_path") {
		return nil, fmt.Errorf("new_path is required for %s", a.String("action", "rename"))
	}
	return Command{
		"cmd":       "rename_file",
		"from_path": a.Value("path", nil),
		"to_path":   a.Value("new_path", nil),
	}, nil
}

func buildPhysicsLayer(a server.Args) (Command, error) {
	cmd := "set_collision_mask"
	if a.String("type", "") == "layer" {
		cmd = "set_collision_layer"
	}
	return Command{
		"cmd":     cmd,
		"path":    a.Value("node_path", nil),
		"layer":   a.Value("layer_index", nil),
		"enabled": a.Bool("enabled", true),
	}, nil
}

// command is one editor tool: its definition and how it becomes a command.
// Tools with a nil build are served locally.
type command struct {
	tool  server.Tool
	build builder
}

func tool(name, description string, schema map[string]interface{}, readOnly bool) server.Tool {
	return server.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
		ReadOnly:    readOnly,
		Errors:      server.MarkedError,
	}
}

const (
	toolCheckConnection   = "godot_check_connection"
	toolGenerateHeightmap = "godot_generate_heightmap"
)

var (
	nodePath     = str("Path of the node, relative to the scene root (e.g. 'Player/Camera')")
	terrainPath  = str("Path of the Terrain3D node")
	physicsType  = withDefault(enum("Physics dimension", "2D", "3D"), "3D")
	extensionsIn = list("string", "Extension filter (e.g. ['.gd', '.tscn', '.png'])")
	paramsObject = dict("Additional parameters")
)

// commands is the editor tool table, in the order tools are listed.
var commands = []command{
	// Connection and local helpers
	{tool: tool(toolCheckConnection,
		"Check that the editor plugin accepts connections.",
		object(map[string]interface{}{}), true)},
	{tool: tool(toolGenerateHeightmap,
		"Generate a grayscale PNG heightmap with a single centred hill, ready for godot_terrain_import_heightmap.",
		object(map[string]interface{}{
			"file_path": str("Output path, absolute or res://..."),
			"width":     withDefault(pixels("Width in pixels"), imaging.DefaultHeightmapSize),
			"height":    withDefault(pixels("Height in pixels"), imaging.DefaultHeightmapSize),
			"smooth":    withDefault(number("Gaussian smoothing radius, 0 disables"), 0),
		}, "file_path"), false)},

	// Nodes
	{tool: tool("godot_search_files",
		"Search project files by name or extension. Use before creating new files to check for existing assets (textures, models, scripts).",
		object(map[string]interface{}{
			"query":      str("Text to look for in file names (e.g. 'player', 'grass'). Empty matches everything."),
			"extensions": extensionsIn,
			"root":       withDefault(str("Where to start searching"), "res://"),
		}), true),
		build: fields("search_files", arg("query").or(""), arg("extensions").or([]interface{}{}), arg("root").or("res://"))},
	{tool: tool("godot_create_node",
		"Create a new node in the edited scene.",
		object(map[string]interface{}{
			"node_type":   str("Node class (e.g. 'Node3D', 'MeshInstance3D', 'Camera3D', 'DirectionalLight3D')"),
			"name":        str("Name of the new node"),
			"parent_path": withDefault(str("Parent node path (empty = scene root)"), ""),
		}, "node_type", "name"), false),
		build: fields("create_node", arg("node_type").as("type"), arg("name"), arg("parent_path").as("parent").or(""))},
	{tool: tool("godot_set_property",
		"Set a property of an existing node.",
		object(map[string]interface{}{
			"node_path":     nodePath,
			"property_name": str("Property name (position, rotation, scale, visible, mesh...)"),
			"value":         map[string]interface{}{"description": "Value: number, [x, y, z] list, boolean or string"},
		}, "node_path", "property_name", "value"), false),
		build: fields("set_prop", arg("node_path").as("path"), arg("property_name").as("prop"), arg("value").as("val"))},
	{tool: tool("godot_reparent_node",
		"Move a node under a different parent.",
		object(map[string]interface{}{
			"node_path":             str("Path of the node to move"),
			"new_parent_path":       str("Path of the new parent"),
			"keep_global_transform": withDefault(boolean("Keep the global transform"), true),
		}, "node_path", "new_parent_path"), false),
		build: fields("reparent_node", arg("node_path").as("path"), arg("new_parent_path").as("new_parent"), arg("keep_global_transform").or(true))},
	{tool: tool("godot_duplicate_node",
		"Duplicate an existing node.",
		object(map[string]interface{}{
			"node_path": str("Path of the original node"),
			"new_name":  str("Name of the copy (optional)"),
		}, "node_path"), false),
		build: fields("duplicate_node", arg("node_path").as("path"), arg("new_name").as("name").or(""))},
	{tool: tool("godot_delete_node",
		"Delete a node from the scene.",
		object(map[string]interface{}{"node_path": nodePath}, "node_path"), false),
		build: fields("delete_node", arg("node_path").as("path"))},
	{tool: tool("godot_rename_node",
		"Rename a node.",
		object(map[string]interface{}{
			"node_path": str("Current node path"),
			"new_name":  str("New name"),
		}, "node_path", "new_name"), false),
		build: fields("rename_node", arg("node_path").as("path"), arg("new_name"))},
	{tool: tool("godot_get_node_info",
		"Get details of a node: transform, children, groups and attached script.",
		object(map[string]interface{}{"node_path": nodePath}, "node_path"), true),
		build: fields("get_node_info", arg("node_path").as("path"))},

	// Scenes
	{tool: tool("godot_get_scene_tree",
		"Get the structure of the edited scene as a JSON tree.",
		object(map[string]interface{}{}), true),
		build: fields("get_scene_tree")},
	{tool: tool("godot_save_scene",
		"Save the edited scene. An existing file at save_path is never overwritten; the editor picks a numbered name instead (e.g. level_1.tscn).",
		object(map[string]interface{}{
			"save_path": withDefault(str("Target path (res://scenes/level.tscn). Empty saves over the currently open file."), ""),
		}), false),
		build: fields("save_scene", arg("save_path").as("path").or(""))},
	{tool: tool("godot_create_scene",
		"Create a new scene and open it in the editor.",
		object(map[string]interface{}{
			"save_path": str("Where to save it (e.g. res://scenes/NewLevel.tscn)"),
			"root_type": withDefault(str("Root node class"), "Node3D"),
			"name":      withDefault(str("Root node name"), "SceneRoot"),
		}, "save_path"), false),
		build: fields("create_scene", arg("save_path"), arg("root_type").or("Node3D"), arg("name").or("SceneRoot"))},
	{tool: tool("godot_load_scene",
		"Open an existing scene in the editor.",
		object(map[string]interface{}{"path": str("Path of the .tscn file")}, "path"), false),
		build: fields("load_scene", arg("path"))},
	{tool: tool("godot_add_child_scene",
		"Instance another scene (.tscn) as a child in the edited scene.",
		object(map[string]interface{}{
			"scene_path":  str("Scene file (res://...)"),
			"parent_path": str("Where to add it (empty = scene root)"),
			"name":        str("Instance name (optional)"),
		}, "scene_path"), false),
		build: fields("add_child_scene", arg("scene_path"), arg("parent_path").as("parent").or(""), arg("name").or(""))},
	{tool: tool("godot_fix_ownership",
		"Set the owner of a subtree recursively. Call before saving a scene built up from scripted changes.",
		object(map[string]interface{}{"root_path": str("Node to start from")}, "root_path"), false),
		build: fields("set_owner_recursive", arg("root_path").as("path"))},

	// Environment
	{tool: tool("godot_env_create",
		"Create a WorldEnvironment if none exists and initialise its Environment and CameraAttributesPractical.",
		object(map[string]interface{}{}), false),
		build: fields("env_create")},
	{tool: tool("godot_env_set_background",
		"Set the scene background (sky or colour).",
		object(map[string]interface{}{
			"mode": enum("Background mode", "clear_color", "custom_color", "sky", "canvas"),
			"color": map[string]interface{}{
				"description": "[r, g, b] floats or a hex string like '#87ceeb', for custom_color",
				"oneOf": []interface{}{
					list("number", ""),
					str(""),
				},
			},
			"energy": withDefault(number("Energy multiplier"), 1.0),
		}, "mode"), false),
		build: buildBackground},
	{tool: tool("godot_env_set_effect",
		"Configure an Environment effect.",
		object(map[string]interface{}{
			"effect_type": enum("Environment section to change",
				"tonemap", "glow", "fog", "volumetric_fog", "ssao", "ssil", "sdfgi", "adjustment"),
			"enabled": withDefault(boolean("Turn the effect on or off (ignored for tonemap)"), true),
			"params": dict("Key/value settings as named by Godot.\n" +
				"Glow: intensity, strength, bloom, blend_mode (0-4)\n" +
				"Fog: density, light_color, sun_scatter, height_density\n" +
				"VolumetricFog: density, albedo, emission, length\n" +
				"SSAO: radius, intensity, power, detail\n" +
				"SDFGI: bounce_feedback, cascades, min_cell_size\n" +
				"Adjustment: brightness, contrast, saturation\n" +
				"Tonemap: mode (0=Linear, 2=Filmic, 3=ACES), exposure, white"),
		}, "effect_type"), false),
		build: fields("env_set_effect", arg("effect_type").as("type"), arg("enabled").or(true), arg("params").or(map[string]interface{}{}))},
	{tool: tool("godot_env_camera_attributes",
		"Set CameraAttributes (exposure and auto exposure).",
		object(map[string]interface{}{
			"auto_exposure":        boolean("Enable auto exposure"),
			"exposure_multiplier":  number("Base brightness (default 1.0)"),
			"exposure_sensitivity": number("ISO sensitivity (default 100.0)"),
			"auto_exposure_speed":  number("Adaptation speed (default 0.5)"),
			"auto_exposure_scale":  number("Effect scale (default 0.4)"),
		}), false),
		build: passthrough("env_set_camera_attributes")},

	// Mesh and physics
	{tool: tool("godot_set_mesh",
		"Create a primitive mesh and assign it to a MeshInstance3D.",
		object(map[string]interface{}{
			"node_path": str("Path of the MeshInstance3D"),
			"mesh_type": str("BoxMesh, SphereMesh, CapsuleMesh, CylinderMesh, PlaneMesh, PrismMesh or TorusMesh"),
			"params":    dict("Mesh parameters (e.g. size=[1,1,1], radius=1.0, height=2.0)"),
		}, "node_path", "mesh_type"), false),
		build: fields("set_mesh", arg("node_path").as("path"), arg("mesh_type"), arg("params").or(map[string]interface{}{}))},
	{tool: tool("godot_add_collision_shape",
		"Add a CollisionShape node with its shape resource.",
		object(map[string]interface{}{
			"parent_path": str("Parent body (e.g. RigidBody3D, StaticBody3D, Area3D)"),
			"shape_type":  str("BoxShape3D, SphereShape3D, CapsuleShape3D, CylinderShape3D, RectangleShape2D..."),
			"params":      dict("Shape parameters (size, radius, height)"),
			"name":        withDefault(str(""), "CollisionShape"),
		}, "parent_path", "shape_type"), false),
		build: fields("add_collision_shape", arg("parent_path").as("parent"), arg("shape_type"),
			arg("params").or(map[string]interface{}{}), arg("name").or("CollisionShape"))},
	{tool: tool("godot_get_collision_layers",
		"List the named physics layers.",
		object(map[string]interface{}{"type": physicsType}), true),
		build: fields("get_collision_layers", arg("type").or("3D"))},
	{tool: tool("godot_set_collision_layer_name",
		"Name, rename or clear a physics layer in the project settings.",
		object(map[string]interface{}{
			"index": map[string]interface{}{"type": "integer", "minimum": 1, "maximum": 32, "description": "Layer number (1-32)"},
			"name":  str("New layer name. Leave empty to clear it."),
			"type":  physicsType,
		}, "index", "name"), false),
		build: fields("set_collision_layer_name", arg("index"), arg("name"), arg("type").or("3D"))},
	{tool: tool("godot_set_physics_layer",
		"Set a collision layer or mask bit on a node.",
		object(map[string]interface{}{
			"node_path":   nodePath,
			"type":        str("'layer' (the object is in this layer) or 'mask' (the object scans this layer)"),
			"layer_index": integer("Layer number (1-32)"),
			"enabled":     withDefault(boolean("Set (true) or clear (false) the bit"), true),
		}, "node_path", "type", "layer_index"), false),
		build: buildPhysicsLayer},

	// Files
	{tool: tool("godot_list_files",
		"List files and folders under a path. Useful for finding assets (.obj, .png, .tscn) or checking the project layout.",
		object(map[string]interface{}{
			"path":       withDefault(str("Folder (res://...)"), "res://"),
			"recursive":  withDefault(boolean("Include subfolders"), false),
			"extensions": extensionsIn,
		}), true),
		build: fields("list_dir", arg("path").or("res://"), arg("recursive").or(false), arg("extensions").or([]interface{}{}))},
	{tool: tool("godot_make_directory",
		"Create a folder, including missing parents.",
		object(map[string]interface{}{"path": str("New folder (res://assets/models)")}, "path"), false),
		build: fields("make_dir", arg("path"))},
	{tool: tool("godot_manage_file",
		"Rename, move or delete a file or folder.",
		object(map[string]interface{}{
			"action":   enum("What to do", "rename", "move", "delete"),
			"path":     str("File or folder path"),
			"new_path": str("New path (rename and move only)"),
		}, "action", "path"), false),
		build: buildManageFile},

	// Terrain3D
	{tool: tool("godot_terrain_create",
		"Create a Terrain3D node (v1.0+). storage_path must be set for the terrain data to be saved.",
		object(map[string]interface{}{
			"name":         withDefault(str("Node name"), "Terrain3D"),
			"parent_path":  str("Parent node path (empty = scene root)"),
			"storage_path": withDefault(str("FOLDER for the terrain data (e.g. res://terrain_data)"), "res://terrain_data"),
		}, "storage_path"), false),
		build: fields("create_terrain", arg("name").or("Terrain3D"), arg("parent_path").or(""), arg("storage_path").or("res://terrain_data"))},
	{tool: tool("godot_terrain_import_heightmap",
		"Import an image (PNG/EXR/RAW) as a heightmap into Terrain3D at a given position.",
		object(map[string]interface{}{
			"node_path":  terrainPath,
			"file_path":  str("Image path (res://...)"),
			"min_height": withDefault(number("Height of black pixels"), 0.0),
			"max_height": withDefault(number("Height of white pixels"), 100.0),
			"position":   withDefault(list("number", "Where to apply it, [x, y, z]"), []int{0, 0, 0}),
		}, "node_path", "file_path"), false),
		build: fields("terrain_import_heightmap", arg("node_path"), arg("file_path"),
			arg("min_height").or(0.0), arg("max_height").or(100.0), arg("position").or([]interface{}{0, 0, 0}))},
	{tool: tool("godot_terrain_configure",
		"Configure the main terrain parameters (size, LOD, vertex spacing).",
		object(map[string]interface{}{
			"node_path":      terrainPath,
			"vertex_spacing": number("Distance between vertices (terrain scale). Default 1.0"),
			"mesh_size":      integer("Mesh size (quality). Default 48"),
			"mesh_lods":      integer("Number of LOD levels. Default 7"),
			"region_size":    integer("Region size (64, 128, 256, 512, 1024). Default 256"),
			"cull_margin":    number("Extra render margin"),
		}, "node_path"), false),
		build: passthrough("terrain_configure")},
	{tool: tool("godot_terrain_physics",
		"Configure terrain collision.",
		object(map[string]interface{}{
			"node_path":         terrainPath,
			"collision_enabled": boolean("Enable collision"),
			"layer":             integer("Collision layer bitmask"),
			"mask":              integer("Collision mask bitmask"),
			"priority":          number("Collision priority. Default 1.0"),
			"radius":            integer("Collision radius. Default 64"),
		}, "node_path"), false),
		build: passthrough("terrain_physics")},
	{tool: tool("godot_terrain_rendering",
		"Configure terrain rendering (shadows, GI).",
		object(map[string]interface{}{
			"node_path":     terrainPath,
			"cast_shadows":  integer("0=Off, 1=On, 2=DoubleSided, 3=ShadowsOnly. Default 1"),
			"gi_mode":       integer("0=Disabled, 1=Static, 2=Dynamic. Default 1"),
			"render_layers": integer("Visual layers bitmask. Default 1"),
		}, "node_path"), false),
		build: passthrough("terrain_rendering")},
	{tool: tool("godot_terrain_visuals",
		"Toggle terrain debug views (grid, instances, heightmap, colormap).",
		object(map[string]interface{}{
			"node_path":      terrainPath,
			"show_grid":      boolean("Show the region grid"),
			"show_instances": boolean("Show instanced meshes"),
			"show_heightmap": boolean("Heightmap debug view"),
			"show_colormap":  boolean("Colormap debug view"),
			"debug_level":    integer("0=Errors, 1=Info, 2=Debug, 3=Extreme"),
		}, "node_path"), false),
		build: passthrough("terrain_visuals")},
	{tool: tool("godot_terrain_task",
		"Run a Terrain3D import or export task (heightmaps, color maps, RAW/R16).",
		object(map[string]interface{}{
			"task_type": enum("", "import", "export"),
			"map_type":  enum("Map type", "height", "color", "control"),
			"file_path": str("File path (res://... or absolute)"),
			"data_dir":  str("Terrain data folder (res://terrain_data)"),
			"params": dict("Import: position [x,y,z], scale, offset, min_height, max_height, r16_dim [w,h]\n" +
				"Export: none"),
		}, "task_type", "map_type", "file_path", "data_dir"), false),
		build: fields("terrain_task", arg("task_type"), arg("map_type"), arg("file_path"), arg("data_dir"), arg("params").or(map[string]interface{}{}))},
	{tool: tool("godot_terrain_add_texture",
		"Add a texture set (albedo and normal) to the terrain palette.",
		object(map[string]interface{}{
			"node_path":   terrainPath,
			"name":        str("Display name (e.g. 'Grass_Green')"),
			"albedo_path": str("Albedo texture path"),
			"normal_path": str("Normal map path (optional)"),
			"uv_scale":    withDefault(number(""), 1.0),
		}, "node_path", "albedo_path"), false),
		build: passthrough("terrain_add_texture")},
	{tool: tool("godot_terrain_add_mesh",
		"Register a model (tree, rock, grass) with the terrain for instancing.",
		object(map[string]interface{}{
			"node_path":      terrainPath,
			"mesh_path":      str("Path of a .obj, .glb or .tscn file"),
			"name":           str("Name (e.g. 'PineTree')"),
			"scale_variance": withDefault(number("Random size variation"), 0.2),
		}, "node_path", "mesh_path"), false),
		build: passthrough("terrain_add_mesh")},
	{tool: tool("godot_terrain_place_instances",
		"Place mesh instances (trees, grass) on the terrain.",
		object(map[string]interface{}{
			"node_path": terrainPath,
			"mesh_id":   integer("Mesh id returned by godot_terrain_add_mesh, starting at 0"),
			"positions": map[string]interface{}{
				"type":        "array",
				"items":       list("number", ""),
				"description": "Positions [[x,y,z], [x,y,z], ...]",
			},
			"auto_height": withDefault(boolean("Snap to the ground, ignoring Y"), true),
		}, "node_path", "mesh_id", "positions"), false),
		build: passthrough("terrain_place_instances")},
	{tool: tool("godot_terrain_bake_navmesh",
		"Bake a navigation mesh for the terrain.",
		object(map[string]interface{}{"node_path": terrainPath}, "node_path"), false),
		build: passthrough("terrain_bake_navmesh")},
	{tool: tool("godot_terrain_raycast",
		"Find the terrain height and position at a point without physics.",
		object(map[string]interface{}{
			"node_path": terrainPath,
			"x":         number(""),
			"z":         number(""),
		}, "node_path", "x", "z"), true),
		build: passthrough("terrain_raycast")},
	{tool: tool("godot_terrain_bake_mesh",
		"Bake the terrain into a static ArrayMesh (for navmesh or export).",
		object(map[string]interface{}{
			"node_path": terrainPath,
			"lod":       withDefault(integer("Level of detail (0-8)"), 4),
			"save_path": str("Where to save the .res file (e.g. res://terrain_mesh.res)"),
		}, "node_path"), false),
		build: fields("terrain_bake_mesh", arg("node_path"), arg("lod").or(4), arg("save_path").or(""))},
	{tool: tool("godot_terrain_get_height",
		"Get the terrain height at (x, z).",
		object(map[string]interface{}{
			"node_path": terrainPath,
			"x":         number("X coordinate"),
			"z":         number("Z coordinate"),
		}, "node_path", "x", "z"), true),
		build: fields("terrain_get_height", arg("node_path"), arg("x"), arg("z"))},

	// 2D
	{tool: tool("godot_2d_create",
		"Create a 2D node (Sprite2D, Node2D, Label, Control).",
		object(map[string]interface{}{
			"type":         str("Node class (e.g. Sprite2D, Label, Node2D)"),
			"name":         str(""),
			"parent_path":  str(""),
			"position":     list("number", "[x, y]"),
			"texture_path": str("Sprite2D only: image path"),
			"text":         str("Label/Button only: text"),
		}, "type", "name"), false),
		build: passthrough("create_node_2d")},
	{tool: tool("godot_2d_transform",
		"Set position, rotation and scale of a 2D node.",
		object(map[string]interface{}{
			"node_path": nodePath,
			"position":  list("number", "[x, y]"),
			"rotation":  number("Angle in degrees"),
			"scale":     list("number", "[x, y]"),
		}, "node_path"), false),
		build: passthrough("set_transform_2d")},

	// Scripts
	{tool: tool("godot_create_script",
		"Create a script. If the file exists the editor picks a unique name (e.g. script_1.gd) unless overwrite is true.",
		object(map[string]interface{}{
			"path":      str("Script path (res://...)"),
			"content":   str("Source code"),
			"overwrite": withDefault(boolean("Replace an existing file instead of picking a new name"), false),
		}, "path", "content"), false),
		build: fields("create_script", arg("path"), arg("content"), arg("overwrite").or(false))},
	{tool: tool("godot_read_script",
		"Read the source of an existing script.",
		object(map[string]interface{}{"path": str("Script path (res://...)")}, "path"), true),
		build: fields("get_script_content", arg("path"))},
	{tool: tool("godot_attach_script",
		"Attach an existing script to a node.",
		object(map[string]interface{}{
			"node_path":   nodePath,
			"script_path": str("Script path (res://...)"),
		}, "node_path", "script_path"), false),
		build: fields("attach_script", arg("node_path").as("path"), arg("script_path"))},
	{tool: tool("godot_detach_script",
		"Detach the script from a node.",
		object(map[string]interface{}{"node_path": nodePath}, "node_path"), false),
		build: fields("detach_script", arg("node_path").as("path"))},
}

// Definitions returns every editor bridge tool.
func Definitions() []server.Tool {
	tools := make([]server.Tool, len(commands))
	for i, c := range commands {
		tools[i] = c.tool
	}
	return tools
}

// Build returns the command the named tool sends to the editor. It fails
// for unknown tools and for tools served locally.
func Build(name string, a server.Args) (Command, error) {
	for _, c := range commands {
		if c.tool.Name != name {
			continue
		}
		if c.build == nil {
			return nil, fmt.Errorf("%s does not send an editor command", name)
		}
		return c.build(a)
	}
	return nil, fmt.Errorf("unknown tool: %s", name)
}
