package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GerhardSerton/OpenGLPractice/gpu"
	"github.com/GerhardSerton/OpenGLPractice/gpu/gputest"
)

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBuild_Success(t *testing.T) {
	dev := gputest.New()
	vert := writeSource(t, "simple.vert", "void main() {}")
	frag := writeSource(t, "simple.frag", "void main() {}")

	prog, err := NewBuilder(dev).Build(vert, frag)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !prog.Valid() {
		t.Fatalf("Expected valid program, got %+v", prog)
	}
	if prog.Log != "" {
		t.Errorf("Expected empty log after clean link, got %q", prog.Log)
	}
	if len(dev.Shaders) != 0 {
		t.Errorf("Expected both stages released after link, %d still alive", len(dev.Shaders))
	}
	if got := len(dev.Attached[prog.ID]); got != 2 {
		t.Errorf("Expected 2 attached stages, got %d", got)
	}
}

func TestLink_FailureReleasesStagesAndLeavesProgramInvalid(t *testing.T) {
	dev := gputest.New()
	dev.FailLink = true
	dev.LinkLog = "error: Rotation type mismatch"
	b := NewBuilder(dev)

	vert, err := b.Compile("void main() {}", gpu.VertexShader)
	if err != nil {
		t.Fatalf("Compile vertex: %v", err)
	}
	frag, err := b.Compile("void main() {}", gpu.FragmentShader)
	if err != nil {
		t.Fatalf("Compile fragment: %v", err)
	}

	prog, err := b.Link(vert, frag)
	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("Expected *LinkError, got %v", err)
	}
	if prog == nil {
		t.Fatal("Expected non-nil program on link failure")
	}
	if prog.Valid() || prog.ID != 0 || prog.Linked {
		t.Errorf("Expected invalid program, got %+v", prog)
	}
	if prog.Log != dev.LinkLog {
		t.Errorf("Expected log %q, got %q", dev.LinkLog, prog.Log)
	}
	if len(dev.Shaders) != 0 {
		t.Errorf("Expected stages released on failure path, %d still alive", len(dev.Shaders))
	}
	if len(dev.Programs) != 0 {
		t.Errorf("Expected failed program deleted, %d still alive", len(dev.Programs))
	}

	// Destroying an invalid program is a no-op.
	prog.Destroy()
}

func TestLink_LogIsBounded(t *testing.T) {
	dev := gputest.New()
	dev.FailLink = true
	dev.LinkLog = strings.Repeat("x", 4*MaxLogLength)
	b := NewBuilder(dev)

	vert, _ := b.Compile("v", gpu.VertexShader)
	frag, _ := b.Compile("f", gpu.FragmentShader)
	prog, _ := b.Link(vert, frag)

	if len(prog.Log) != MaxLogLength {
		t.Errorf("Expected log capped at %d bytes, got %d", MaxLogLength, len(prog.Log))
	}
}

func TestLink_EmptyDriverLogStillDiagnoses(t *testing.T) {
	dev := gputest.New()
	dev.FailLink = true
	b := NewBuilder(dev)

	vert, _ := b.Compile("v", gpu.VertexShader)
	frag, _ := b.Compile("f", gpu.FragmentShader)
	prog, _ := b.Link(vert, frag)

	if prog.Log == "" {
		t.Error("Expected a non-empty diagnostic even when the driver gives none")
	}
}

func TestCompile_FailureReturnsSentinel(t *testing.T) {
	dev := gputest.New()
	dev.FailCompile[gpu.FragmentShader] = true
	dev.CompileLog = "0:3: syntax error"

	stage, err := NewBuilder(dev).Compile("garbage", gpu.FragmentShader)
	if stage != 0 {
		t.Errorf("Expected invalid stage 0, got %d", stage)
	}
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Expected *CompileError, got %v", err)
	}
	if compileErr.Kind != gpu.FragmentShader || compileErr.Log != dev.CompileLog {
		t.Errorf("Unexpected compile error contents: %+v", compileErr)
	}
	if len(dev.Shaders) != 0 {
		t.Errorf("Expected failed stage deleted, %d still alive", len(dev.Shaders))
	}
}

func TestBuild_MissingFileDegradesToFailedLink(t *testing.T) {
	dev := gputest.New()
	frag := writeSource(t, "simple.frag", "void main() {}")

	prog, err := NewBuilder(dev).Build(filepath.Join(t.TempDir(), "missing.vert"), frag)
	if err == nil {
		t.Fatal("Expected error for missing vertex source")
	}
	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Errorf("Expected wrapped *LinkError, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.vert") {
		t.Errorf("Expected error to name the missing file, got %v", err)
	}
	if prog == nil || prog.Valid() {
		t.Fatalf("Expected invalid non-nil program, got %+v", prog)
	}
	if prog.Log == "" {
		t.Error("Expected non-empty diagnostic log")
	}
	if len(dev.Shaders) != 0 {
		t.Errorf("Expected compiled fragment stage released, %d still alive", len(dev.Shaders))
	}
}

func TestLoadStage_ResourceOpenError(t *testing.T) {
	dev := gputest.New()
	path := filepath.Join(t.TempDir(), "nope.vert")

	stage, err := NewBuilder(dev).LoadStage(path, gpu.VertexShader)
	if stage != 0 {
		t.Errorf("Expected invalid stage 0, got %d", stage)
	}
	var openErr *ResourceOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Expected *ResourceOpenError, got %v", err)
	}
	if openErr.Path != path {
		t.Errorf("Expected path %q, got %q", path, openErr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected error to unwrap to os.ErrNotExist, got %v", err)
	}
	if len(dev.Calls) != 0 {
		t.Errorf("Expected no device calls for unreadable file, got %v", dev.Calls)
	}
}

func TestProgram_DestroyOnce(t *testing.T) {
	dev := gputest.New()
	b := NewBuilder(dev)
	vert, _ := b.Compile("v", gpu.VertexShader)
	frag, _ := b.Compile("f", gpu.FragmentShader)
	prog, err := b.Link(vert, frag)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	prog.Destroy()
	prog.Destroy()

	deletes := 0
	for _, c := range dev.Calls {
		if c == "DeleteProgram" {
			deletes++
		}
	}
	if deletes != 1 {
		t.Errorf("Expected exactly one DeleteProgram, got %d", deletes)
	}
	if prog.Valid() {
		t.Error("Expected destroyed program to be invalid")
	}
}
