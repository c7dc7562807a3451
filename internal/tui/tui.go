package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fredd/aora/internal/auth"
	"github.com/fredd/aora/internal/domain"
	"github.com/fredd/aora/internal/posts"
	"github.com/fredd/aora/pkg/logger"
)

// submitState tracks one submission attempt. Failed and done both fall back
// to idle after the unconditional form reset.
type submitState int

const (
	stateIdle submitState = iota
	stateValidating
	stateUploading
	stateCreatingRecord
	stateDone
	stateFailed
)

const (
	fieldTitle = iota
	fieldVideo
	fieldThumbnail
	fieldPrompt
	fieldCount
)

// Screen is the create-post form. Field values are plain text buffers; the
// video and thumbnail fields hold local file paths standing in for the
// device media picker.
type Screen struct {
	ctx    context.Context
	posts  posts.Service
	auth   auth.Service
	logger logger.Logger

	user  *domain.User
	state submitState
	focus int
	field [fieldCount]string
	alert string
	width int
}

func NewScreen(ctx context.Context, postsSvc posts.Service, authSvc auth.Service, log logger.Logger) *Screen {
	return &Screen{
		ctx:    ctx,
		posts:  postsSvc,
		auth:   authSvc,
		logger: log.WithComponent("CreateScreen"),
		state:  stateIdle,
	}
}

type currentUserMsg struct {
	user *domain.User
	err  error
}

type submitDoneMsg struct {
	post *domain.Post
	err  error
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		user, err := s.auth.CurrentUser(s.ctx)
		return currentUserMsg{user: user, err: err}
	}
}
