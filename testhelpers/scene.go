package testhelpers

import (
	"testing"
)

// Scene represents a test scene with a temporary directory and Git
// repository. Cleanup is automatic via t.Cleanup.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git
// repository.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup creates a scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("initial.txt", "initial", "initial commit")
}
