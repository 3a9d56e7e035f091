package tool

import "strings"

// Name represents tool name
type Name string

func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, name string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + name)
}

// Canonical normalises a tool reference to its tool name. It accepts tool
// names ("portal-status") as well as action paths ("portal/status",
// "portal.status").
func Canonical(name string) string {
	if strings.Contains(name, "-") {
		return strings.ReplaceAll(name, "/", "_")
	}
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		idx = strings.LastIndex(name, "/")
	}
	if idx == -1 {
		return name
	}
	return NewName(name[:idx], name[idx+1:]).String()
}
