package operator

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

// processItem runs one action inside its own transaction. A panicking action
// is rolled back and reported as an error so the worker keeps running.
// Items abandoned by their caller are skipped. A started action runs on a
// context detached from the caller's cancellation.
func (o *Operator) processItem(item ActionItem) (err error) {
	if !item.claim() {
		return context.Canceled
	}
	if err = item.ctx.Err(); err != nil {
		return err
	}
	ctx := context.WithoutCancel(item.ctx)

	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
		if !committed {
			_ = writer.Rollback()
		}
	}()

	if err = item.action.Perform(ctx, writer); err != nil {
		return err
	}

	if err = writer.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
	// claimed is set by whichever side gets the item first: the worker
	// starting it or the caller abandoning it.
	claimed *atomic.Bool
}

func (i ActionItem) claim() bool {
	return i.claimed.CompareAndSwap(false, true)
}

type ActionItemResponse struct {
	err error
}
