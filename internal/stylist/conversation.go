package stylist

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wichananm65/prism-styles-backend/internal/product"
	"github.com/wichananm65/prism-styles-backend/internal/settings"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrTurnInProgress = errors.New("previous message is still being answered")
)

const (
	WelcomeMessage     = "Welcome to the PRISM Circle. I am your personal AI Stylist. How can I help you refine your aesthetic today?"
	InterruptedMessage = "I apologize, the connection to the Prism network is currently interrupted. Please try again in a moment."
	UnavailableMessage = "Our AI systems are cycling through maintenance. Please check back shortly for your personalized style consultation."
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// Message is a transcript entry. Image messages carry a data URI as Content and
// point at the bot reply they illustrate through ReplyTo.
type Message struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
	ReplyTo string `json:"replyTo,omitempty"`
}

type State string

const (
	StateIdle          State = "idle"
	StateAwaitingText  State = "awaiting_text"
	StateAwaitingImage State = "awaiting_image"
)

// Catalog is satisfied by *product.Service.
type Catalog interface {
	List() []product.Product
}

// Branding is satisfied by settings.Repository.
type Branding interface {
	Get() settings.SiteSettings
}

// Conversation is the stylist chat of one session.
//
// Only one text request may be outstanding at a time. Image requests run in the
// background and may overlap later turns; each image is placed directly after the
// reply that asked for it, whatever the order in which images complete.
type Conversation struct {
	gen     Generator
	catalog Catalog
	brand   Branding

	imageTimeout time.Duration

	mu            sync.Mutex
	messages      []Message
	awaitingText  bool
	pendingImages int
}

type Option func(*Conversation)

// WithImageTimeout bounds each background image request.
func WithImageTimeout(d time.Duration) Option {
	return func(c *Conversation) { c.imageTimeout = d }
}

// NewConversation starts a transcript with the welcome message. A nil gen makes
// every turn answer with the maintenance fallback.
func NewConversation(gen Generator, catalog Catalog, brand Branding, opts ...Option) *Conversation {
	c := &Conversation{
		gen:     gen,
		catalog: catalog,
		brand:   brand,
		messages: []Message{
			{ID: uuid.NewString(), Role: RoleBot, Kind: KindText, Content: WelcomeMessage},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.awaitingText:
		return StateAwaitingText
	case c.pendingImages > 0:
		return StateAwaitingImage
	default:
		return StateIdle
	}
}

// Reply is the outcome of one turn. Image is nil when no image was requested.
type Reply struct {
	User  Message    `json:"user"`
	Bot   Message    `json:"bot"`
	Image *ImageTask `json:"-"`
}

// Send runs one turn: the user's text, the model's reply and, when the reply asks
// for one, a background image request. Remote failures never surface as errors;
// they become fallback bot messages.
func (c *Conversation) Send(ctx context.Context, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.awaitingText {
		c.mu.Unlock()
		return Reply{}, ErrTurnInProgress
	}
	c.awaitingText = true
	user := Message{ID: uuid.NewString(), Role: RoleUser, Kind: KindText, Content: text}
	c.messages = append(c.messages, user)
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.awaitingText = false
		c.mu.Unlock()
	}()

	reply := Reply{User: user}
	if c.gen == nil {
		reply.Bot = c.appendBot(UnavailableMessage)
		return reply, nil
	}

	sys := SystemInstruction(c.brand.Get().BrandName, ProductContext(c.catalog.List()))
	raw, err := c.gen.GenerateText(ctx, sys, text)
	if err != nil {
		log.Printf("[stylist] text generation failed: %v", err)
		reply.Bot = c.appendBot(UnavailableMessage)
		return reply, nil
	}
	if strings.TrimSpace(raw) == "" {
		reply.Bot = c.appendBot(InterruptedMessage)
		return reply, nil
	}

	display, description, ok := ParseDirective(raw)
	if display == "" {
		display = InterruptedMessage
	}
	reply.Bot = c.appendBot(display)
	if ok {
		reply.Image = c.startImage(ctx, reply.Bot.ID, description)
	}
	return reply, nil
}

func (c *Conversation) appendBot(content string) Message {
	m := Message{ID: uuid.NewString(), Role: RoleBot, Kind: KindText, Content: content}
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()
	return m
}

// ImageTask is the handle of a background image request.
type ImageTask struct {
	done chan struct{}
	msg  Message
	err  error
}

// Wait blocks until the image request finishes. On failure the transcript is
// unchanged and the error is returned.
func (t *ImageTask) Wait() (Message, error) {
	<-t.done
	return t.msg, t.err
}

func (t *ImageTask) Done() <-chan struct{} {
	return t.done
}

func (c *Conversation) startImage(ctx context.Context, replyTo, description string) *ImageTask {
	t := &ImageTask{done: make(chan struct{})}
	c.mu.Lock()
	c.pendingImages++
	c.mu.Unlock()

	// the HTTP request that started the turn may finish before the image does
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer close(t.done)
		if c.imageTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.imageTimeout)
			defer cancel()
		}
		defer func() {
			c.mu.Lock()
			c.pendingImages--
			c.mu.Unlock()
		}()

		uri, err := c.gen.GenerateImage(ctx, ImagePrompt(description))
		if err != nil {
			log.Printf("[stylist] image generation failed: %v", err)
			t.err = err
			return
		}
		t.msg = Message{ID: uuid.NewString(), Role: RoleBot, Kind: KindImage, Content: uri, ReplyTo: replyTo}
		c.insertAfter(replyTo, t.msg)
	}()
	return t
}

func (c *Conversation) insertAfter(id string, m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.messages, func(x Message) bool { return x.ID == id })
	if i < 0 {
		c.messages = append(c.messages, m)
		return
	}
	c.messages = slices.Insert(c.messages, i+1, m)
}
