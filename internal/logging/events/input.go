package events

import "github.com/atomicstack/tmux-workspace/internal/logging"

type QueryTracer struct{}

type MatchTracer struct{}

type ActionTracer struct{}

var (
	Query  = QueryTracer{}
	Match  = MatchTracer{}
	Action = ActionTracer{}
)

func (QueryTracer) Insert(text string, cursor int) {
	logging.Trace("query.insert", map[string]interface{}{"text": text, "cursor": cursor})
}

func (QueryTracer) Delete(text string, cursor int) {
	logging.Trace("query.delete", map[string]interface{}{"text": text, "cursor": cursor})
}

func (QueryTracer) Cursor(cursor int) {
	logging.Trace("query.cursor", map[string]interface{}{"cursor": cursor})
}

func (MatchTracer) Update(query, match string, ok bool) {
	logging.Trace("match.update", map[string]interface{}{"query": query, "match": match, "ok": ok})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
