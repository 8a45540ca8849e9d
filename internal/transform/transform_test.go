package transform

import (
	"strings"
	"testing"
)

func TestSanctify_ReplacementTable(t *testing.T) {
	transformer := NewTransformer()

	secular := `function greet(name) {
  try {
    console.log("hello " + name);
  } catch (e) {
    throw new Error("failed");
  }
  return name;
}`

	divine := transformer.Sanctify(secular)

	wants := []string{
		"bless function greet",
		"attempt_salvation {",
		`revelation("hello " + name)`,
		"forgive (e)",
		`confess new Sin("failed")`,
		"ascend with name;",
	}
	for _, want := range wants {
		if !strings.Contains(divine, want) {
			t.Errorf("expected sanctified code to contain %q", want)
		}
	}

	for _, gone := range []string{"console.log", "catch (", "throw new Error"} {
		if strings.Contains(divine, gone) {
			t.Errorf("secular fragment %q survived sanctification", gone)
		}
	}
}

func TestSanctify_WrapsInPrayer(t *testing.T) {
	divine := NewTransformer().Sanctify("let x = 1;")

	if !strings.HasPrefix(divine, "// Transformed by the Divine Miracle of DivinePL") {
		t.Error("missing divine header")
	}
	if !strings.Contains(divine, "🙏 BEGIN PRAYER 🙏") || !strings.Contains(divine, "🙏 END PRAYER 🙏") {
		t.Error("missing prayer block")
	}
	if !strings.Contains(divine, "DivinePL 1:1") {
		t.Error("missing divine footer")
	}
}

func TestExtractScripts(t *testing.T) {
	page := `<html>
<head><script>var a = 1;</script><style>p { color: red }</style></head>
<body>
  <p>Visible prose stays out.</p>
  <script>
    function run() { return a; }
  </script>
</body>
</html>`

	scripts, err := ExtractScripts(page)
	if err != nil {
		t.Fatalf("ExtractScripts failed: %v", err)
	}

	if !strings.Contains(scripts, "var a = 1;") {
		t.Error("expected the head script body")
	}
	if !strings.Contains(scripts, "function run()") {
		t.Error("expected the body script")
	}
	if strings.Contains(scripts, "Visible prose") {
		t.Error("page prose must not leak into extracted scripts")
	}
	if strings.Contains(scripts, "color: red") {
		t.Error("style content must not leak into extracted scripts")
	}

	// Document order
	if strings.Index(scripts, "var a = 1;") > strings.Index(scripts, "function run()") {
		t.Error("scripts not in document order")
	}
}

func TestIsHTMLPath(t *testing.T) {
	for path, want := range map[string]bool{
		"page.html":   true,
		"INDEX.HTM":   true,
		"app.js":      false,
		"holy.divine": false,
	} {
		if got := IsHTMLPath(path); got != want {
			t.Errorf("IsHTMLPath(%q) = %v, want %v", path, got, want)
		}
	}
}
