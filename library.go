package quat3d

import "sort"

// Library represents the rotations loaded from a glTF file: the rest rotation of each node, and the rotation animations.
type Library struct {
	NodeRotations map[string]Quaternion // A Map of node rest rotations to their node names
	Animations    map[string]*Animation // A Map of Animations to their names
}

// NewLibrary creates a new, empty Library.
func NewLibrary() *Library {
	return &Library{
		NodeRotations: map[string]Quaternion{},
		Animations:    map[string]*Animation{},
	}
}

// NodeRotation returns the rest rotation of the node with the given name, and whether such a node exists.
func (lib *Library) NodeRotation(name string) (Quaternion, bool) {
	rotation, ok := lib.NodeRotations[name]
	return rotation, ok
}

// NodeNames returns the names of all nodes in the Library, sorted.
func (lib *Library) NodeNames() []string {
	names := make([]string, 0, len(lib.NodeRotations))
	for name := range lib.NodeRotations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindAnimation returns the Animation with the given name, or nil if the Library has no such Animation.
func (lib *Library) FindAnimation(name string) *Animation {
	return lib.Animations[name]
}
