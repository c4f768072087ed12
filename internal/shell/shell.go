package shell

import (
	"fmt"
	"sort"
	"strings"
)

var templates = map[string]string{
	"bash": posixTemplate,
	"zsh":  posixTemplate,
	"fish": fishTemplate,
}

const posixTemplate = `{{name}}() {
  command {{binary}} "$@" || return
  if [ -s {{result}} ]; then
    cd -- "$(cat {{result}})" || return
  fi
}
`

const fishTemplate = `function {{name}}
    command {{binary}} $argv; or return
    if test -s {{result}}
        cd (cat {{result}})
    end
end
`

// Supported returns the shells Snippet knows about
func Supported() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snippet returns a shell function called name that runs binary and changes
// into the directory written to resultPath.
func Snippet(shellName, name, binary, resultPath string) (string, error) {
	tmpl, ok := templates[shellName]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", shellName, strings.Join(Supported(), ", "))
	}

	r := strings.NewReplacer(
		"{{name}}", name,
		"{{binary}}", quote(binary),
		"{{result}}", quote(resultPath),
	)
	return r.Replace(tmpl), nil
}

// quote wraps s in single quotes for both POSIX shells and fish
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
