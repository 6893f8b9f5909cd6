package editor

import (
	"errors"
	"testing"
)

type fakeClipboard struct {
	text    string
	failGet bool
	failSet bool
}

func (f *fakeClipboard) GetText() (string, error) {
	if f.failGet {
		return "", errors.New("no display")
	}
	return f.text, nil
}

func (f *fakeClipboard) SetText(text string) error {
	if f.failSet {
		return errors.New("no display")
	}
	f.text = text
	return nil
}

func selectWholeLine(b *Buffer) {
	b.LineHead()
	b.StartSelection()
	b.LineEnd()
}

func TestLocalCutThenPasteRestores(t *testing.T) {
	cb := NewClipboardBridge(&fakeClipboard{}, false)
	b := NewBufferFromContent("hello world")
	selectWholeLine(b)
	mutated, err := cb.Execute(ClipCut, b)
	if err != nil || !mutated {
		t.Fatalf("cut: mutated=%v err=%v", mutated, err)
	}
	if b.Content() != "" {
		t.Fatalf("content=%q", b.Content())
	}
	mutated, err = cb.Execute(ClipPaste, b)
	if err != nil || !mutated {
		t.Fatalf("paste: mutated=%v err=%v", mutated, err)
	}
	if b.Content() != "hello world" {
		t.Fatalf("content=%q", b.Content())
	}
}

func TestOSSyncCutThenPasteRestores(t *testing.T) {
	clip := &fakeClipboard{}
	cb := NewClipboardBridge(clip, true)
	b := NewBufferFromContent("hello world")
	selectWholeLine(b)
	if _, err := cb.Execute(ClipCut, b); err != nil {
		t.Fatalf("cut: %v", err)
	}
	if clip.text != "hello world" {
		t.Fatalf("os clipboard=%q", clip.text)
	}
	if _, err := cb.Execute(ClipPaste, b); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if b.Content() != "hello world" {
		t.Fatalf("content=%q", b.Content())
	}
}

func TestLocalCopyLeavesContent(t *testing.T) {
	cb := NewClipboardBridge(&fakeClipboard{}, false)
	b := NewBufferFromContent("abc")
	selectWholeLine(b)
	mutated, err := cb.Execute(ClipCopy, b)
	if err != nil || mutated {
		t.Fatalf("copy: mutated=%v err=%v", mutated, err)
	}
	if b.Content() != "abc" || b.YankRegister() != "abc" {
		t.Fatalf("content=%q register=%q", b.Content(), b.YankRegister())
	}
}

func TestPasteEmptySourceIsNoop(t *testing.T) {
	for _, syncOS := range []bool{false, true} {
		cb := NewClipboardBridge(&fakeClipboard{}, syncOS)
		b := NewBufferFromContent("abc")
		mutated, err := cb.Execute(ClipPaste, b)
		if err != nil || mutated {
			t.Fatalf("syncOS=%v: mutated=%v err=%v", syncOS, mutated, err)
		}
		if b.Content() != "abc" {
			t.Fatalf("content=%q", b.Content())
		}
	}
}

func TestCutNotRolledBackOnOSWriteFailure(t *testing.T) {
	cb := NewClipboardBridge(&fakeClipboard{failSet: true}, true)
	b := NewBufferFromContent("hello")
	selectWholeLine(b)
	mutated, err := cb.Execute(ClipCut, b)
	if !errors.Is(err, ErrClipboardAccess) {
		t.Fatalf("expected ErrClipboardAccess, got %v", err)
	}
	// the cut already removed the text from the visible content
	if !mutated || b.Content() != "" {
		t.Fatalf("mutated=%v content=%q", mutated, b.Content())
	}
}

func TestPasteOSReadFailure(t *testing.T) {
	cb := NewClipboardBridge(&fakeClipboard{failGet: true}, true)
	b := NewBufferFromContent("abc")
	if _, err := cb.Execute(ClipPaste, b); !errors.Is(err, ErrClipboardAccess) {
		t.Fatalf("expected ErrClipboardAccess, got %v", err)
	}
	if b.Content() != "abc" {
		t.Fatalf("content=%q", b.Content())
	}
}

func TestPasteRejectedDistinctFromAccessError(t *testing.T) {
	cb := NewClipboardBridge(&fakeClipboard{text: "bad\x00text"}, true)
	b := NewBufferFromContent("abc")
	_, err := cb.Execute(ClipPaste, b)
	if !errors.Is(err, ErrPasteRejected) || errors.Is(err, ErrClipboardAccess) {
		t.Fatalf("expected ErrPasteRejected, got %v", err)
	}
	if b.Content() != "abc" {
		t.Fatalf("buffer must be unmutated, got %q", b.Content())
	}
}

func TestCutWithoutSelectionPushesRegister(t *testing.T) {
	clip := &fakeClipboard{}
	cb := NewClipboardBridge(clip, true)
	b := NewBufferFromContent("abc")
	b.SetYankRegister("stash")
	mutated, err := cb.Execute(ClipCut, b)
	if err != nil || mutated {
		t.Fatalf("mutated=%v err=%v", mutated, err)
	}
	if clip.text != "stash" {
		t.Fatalf("os clipboard=%q", clip.text)
	}
}
