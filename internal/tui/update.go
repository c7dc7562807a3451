package tui

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fredd/aora/internal/domain"
	apperrors "github.com/fredd/aora/pkg/errors"
)

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case currentUserMsg:
		if msg.err != nil {
			s.alert = apperrors.GetMessage(msg.err)
			return s, nil
		}
		if msg.user == nil {
			s.alert = "Not signed in"
			return s, nil
		}
		s.user = msg.user
		return s, nil

	case submitDoneMsg:
		// The form resets no matter how the attempt ended, then the
		// screen settles back to idle.
		s.resetForm()
		if msg.err != nil {
			s.state = stateFailed
			s.alert = apperrors.GetMessage(msg.err)
		} else {
			s.state = stateDone
			s.alert = "Post uploaded successfully"
			s.logger.Info("Submission finished", "post_id", msg.post.ID)
		}
		return s, settleCmd()

	case settledMsg:
		s.state = stateIdle
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

type settledMsg struct{}

func settleCmd() tea.Cmd {
	return func() tea.Msg { return settledMsg{} }
}

func (s *Screen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.state == stateUploading || s.state == stateCreatingRecord {
		// A submission is in flight; only quit is allowed.
		if msg.String() == "ctrl+c" {
			return s, tea.Quit
		}
		return s, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return s, tea.Quit
	case "tab", "down":
		s.focus = (s.focus + 1) % fieldCount
		return s, nil
	case "shift+tab", "up":
		s.focus = (s.focus + fieldCount - 1) % fieldCount
		return s, nil
	case "enter":
		return s.submit()
	case "backspace":
		if cur := s.field[s.focus]; cur != "" {
			s.field[s.focus] = cur[:len(cur)-1]
		}
		return s, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		s.field[s.focus] += string(msg.Runes)
	case tea.KeySpace:
		s.field[s.focus] += " "
	}

	return s, nil
}

// submit validates locally first. An incomplete form shows the alert and
// leaves every field as typed; nothing is sent anywhere.
func (s *Screen) submit() (tea.Model, tea.Cmd) {
	s.state = stateValidating

	form := s.buildForm()
	if !form.Complete() {
		s.state = stateIdle
		s.alert = "Please fill in all the fields"
		return s, nil
	}
	if s.user == nil {
		s.state = stateIdle
		s.alert = "Not signed in"
		return s, nil
	}

	s.state = stateUploading
	s.alert = ""
	creatorID := s.user.ID
	return s, func() tea.Msg {
		post, err := s.posts.Submit(s.ctx, form, creatorID)
		return submitDoneMsg{post: post, err: err}
	}
}

func (s *Screen) buildForm() domain.Form {
	return domain.Form{
		Title:     strings.TrimSpace(s.field[fieldTitle]),
		Prompt:    strings.TrimSpace(s.field[fieldPrompt]),
		Video:     assetFromPath(s.field[fieldVideo], domain.AssetTypeVideo),
		Thumbnail: assetFromPath(s.field[fieldThumbnail], domain.AssetTypeImage),
	}
}

func (s *Screen) resetForm() {
	for i := range s.field {
		s.field[i] = ""
	}
	s.focus = fieldTitle
}

// assetFromPath stands in for the device media picker: it turns a local
// path into an asset reference, or nil when the path is empty or missing.
func assetFromPath(path string, assetType domain.AssetType) *domain.Asset {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	return &domain.Asset{
		URI:      "file://" + path,
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
		FileName: filepath.Base(path),
		FileSize: info.Size(),
		Type:     assetType,
	}
}
