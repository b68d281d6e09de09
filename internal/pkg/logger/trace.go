package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求与批处理任务共用的链路 Key
const TraceIDKey = "trace_id"

// ContextHandler 在每条日志上附加 ctx 里的 trace_id
// HTTP 请求由 TraceMiddleware 注入，批处理任务自行生成 job 前缀的 id
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
