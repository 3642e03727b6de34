package service

import (
	"errors"
	"testing"
)

func TestEditSessionBeginDraftComplete(t *testing.T) {
	session := NewEditSession()

	if _, _, editing := session.Current(); editing {
		t.Fatal("expected a fresh session to be idle")
	}

	session.Begin("content", "hero.name", "Alice")
	target, draft, editing := session.Current()
	if !editing {
		t.Fatal("expected session to be editing after Begin")
	}
	if target.Manager != "content" || target.Key != "hero.name" {
		t.Fatalf("unexpected target: %#v", target)
	}
	if draft != "Alice" {
		t.Fatalf("expected draft to start from the persisted value, got %q", draft)
	}

	if err := session.Draft("Alicia"); err != nil {
		t.Fatalf("draft update failed: %v", err)
	}
	if _, draft, _ := session.Current(); draft != "Alicia" {
		t.Fatalf("expected draft Alicia, got %q", draft)
	}

	session.Complete("content", "hero.name")
	if _, _, editing := session.Current(); editing {
		t.Fatal("expected session to be idle after Complete")
	}
}

func TestEditSessionDraftRequiresEditing(t *testing.T) {
	session := NewEditSession()
	if err := session.Draft("orphan"); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}
}

func TestEditSessionCancelDiscardsDraft(t *testing.T) {
	session := NewEditSession()
	session.Begin("contacts", "email", "old@example.com")
	if err := session.Draft("new@example.com"); err != nil {
		t.Fatalf("draft update failed: %v", err)
	}

	session.Cancel()
	if _, _, editing := session.Current(); editing {
		t.Fatal("expected session to be idle after Cancel")
	}

	// 重新进入编辑应以持久化值为起点，而不是被放弃的草稿
	session.Begin("contacts", "email", "old@example.com")
	if _, draft, _ := session.Current(); draft != "old@example.com" {
		t.Fatalf("expected draft to restart from persisted value, got %q", draft)
	}
}

func TestEditSessionSwitchingTargetsDiscardsDraft(t *testing.T) {
	session := NewEditSession()

	session.Begin("content", "hero.name", "Alice")
	if err := session.Draft("unsaved edit"); err != nil {
		t.Fatalf("draft update failed: %v", err)
	}

	// 切换到另一个条目会隐式取消之前的编辑
	session.Begin("content", "hero.title", "Developer")
	target, draft, editing := session.Current()
	if !editing || target.Key != "hero.title" {
		t.Fatalf("expected session to track the new target, got %#v", target)
	}
	if draft != "Developer" {
		t.Fatalf("expected fresh draft for the new target, got %q", draft)
	}

	// 回到第一个条目，草稿应当是持久化值而非丢弃的草稿
	session.Begin("content", "hero.name", "Alice")
	if _, draft, _ := session.Current(); draft != "Alice" {
		t.Fatalf("expected discarded draft to be gone, got %q", draft)
	}
}

func TestEditSessionCompleteIgnoresMismatchedTarget(t *testing.T) {
	session := NewEditSession()
	session.Begin("skills", "7", "90")
	if err := session.Draft("95"); err != nil {
		t.Fatalf("draft update failed: %v", err)
	}

	// 保存了别的条目不应影响当前编辑
	session.Complete("skills", "8")
	_, draft, editing := session.Current()
	if !editing || draft != "95" {
		t.Fatalf("expected draft to survive a mismatched Complete, editing=%v draft=%q", editing, draft)
	}
}

func TestEditRegistrySessionsAreIsolated(t *testing.T) {
	registry := NewEditRegistry()

	first := registry.Session("login-a")
	second := registry.Session("login-b")
	if first == second {
		t.Fatal("expected distinct sessions per login")
	}

	first.Begin("content", "hero.name", "Alice")
	if _, _, editing := second.Current(); editing {
		t.Fatal("expected other logins to stay idle")
	}

	if registry.Session("login-a") != first {
		t.Fatal("expected registry to return the same session for an id")
	}

	registry.Drop("login-a")
	if registry.Session("login-a") == first {
		t.Fatal("expected Drop to discard the stored session")
	}
}
