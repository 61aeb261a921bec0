package cvss

import "sort"

var templates = map[string]Vector{
	"sql_injection":              MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"),
	"remote_code_execution":      MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"),
	"xss_reflected":              MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N"),
	"xss_stored":                 MustParse("CVSS:3.1/AV:N/AC:L/PR:L/UI:R/S:C/C:L/I:L/A:N"),
	"csrf":                       MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:U/C:N/I:H/A:N"),
	"ssrf":                       MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:L/I:N/A:N"),
	"path_traversal":             MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N"),
	"information_disclosure":     MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:L/I:N/A:N"),
	"denial_of_service":          MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:N/I:N/A:H"),
	"local_privilege_escalation": MustParse("CVSS:3.1/AV:L/AC:L/PR:L/UI:N/S:U/C:H/I:H/A:H"),
	"open_redirect":              MustParse("CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N"),
}

// Template returns the preset vector for a common vulnerability class
func Template(name string) (Vector, bool) {
	v, ok := templates[name]
	return v, ok
}

// TemplateNames lists the preset names in alphabetical order
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns a copy of the preset table
func Templates() map[string]Vector {
	m := make(map[string]Vector, len(templates))
	for name, v := range templates {
		m[name] = v
	}
	return m
}
