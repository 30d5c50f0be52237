package tests

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rengerhu/Procurement/pkg/domain/workflow"
)

type articleStatus int

const (
	articleDraft articleStatus = iota
	articlePublished
	articleArchived
)

type article struct {
	status      articleStatus
	body        string
	publishedAt *time.Time
}

var errEmptyArticle = errors.New("article body is empty")

func newArticleWorkflow() *workflow.Workflow[articleStatus, *article] {
	return workflow.New(
		workflow.Transition[articleStatus, *article]{
			Source: articleDraft,
			Target: articlePublished,
			Guard: func(a *article) error {
				if a.body == "" {
					return errEmptyArticle
				}
				return nil
			},
			PostAction: func(a *article) {
				now := time.Now().UTC()
				a.publishedAt = &now
			},
		},
		workflow.Transition[articleStatus, *article]{
			Source: articlePublished,
			Target: articleArchived,
		},
	)
}

func TestWorkflowTransition(t *testing.T) {
	flow := newArticleWorkflow()

	t.Run("Success runs the post action", func(t *testing.T) {
		doc := &article{status: articleDraft, body: "hello"}

		err := flow.Transition(doc, articleDraft, articlePublished)

		require.NoError(t, err)
		require.NotNil(t, doc.publishedAt)
		assert.Equal(t, articleDraft, doc.status, "engine must not write the status field")
	})

	t.Run("Fail on undefined edge", func(t *testing.T) {
		doc := &article{status: articleDraft, body: "hello"}

		err := flow.Transition(doc, articleDraft, articleArchived)

		assert.ErrorIs(t, err, workflow.ErrInvalidTransition)
		assert.Nil(t, doc.publishedAt)
	})

	t.Run("Fail on guard veto", func(t *testing.T) {
		doc := &article{status: articleDraft}

		err := flow.Transition(doc, articleDraft, articlePublished)

		assert.ErrorIs(t, err, errEmptyArticle)
		assert.Nil(t, doc.publishedAt, "post action must not run after a guard veto")
	})

	t.Run("Edge without guard or post action", func(t *testing.T) {
		doc := &article{status: articlePublished, body: "hello"}

		err := flow.Transition(doc, articlePublished, articleArchived)

		require.NoError(t, err)
	})

	t.Run("Last duplicate edge wins", func(t *testing.T) {
		vetoed := workflow.Transition[articleStatus, *article]{
			Source: articleDraft,
			Target: articleArchived,
			Guard:  func(*article) error { return errEmptyArticle },
		}
		open := workflow.Transition[articleStatus, *article]{
			Source: articleDraft,
			Target: articleArchived,
		}
		flow := workflow.New(vetoed, open)

		err := flow.Transition(&article{}, articleDraft, articleArchived)

		require.NoError(t, err)
	})
}
