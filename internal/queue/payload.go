package queue

import (
	"encoding/json"
	"fmt"

	"github.com/dujiao-next/gift-message/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskOrderReceivedEmail 下单成功邮件
const TaskOrderReceivedEmail = constants.TaskOrderReceivedEmail

// OrderReceivedEmailPayload 下单成功邮件任务载荷
type OrderReceivedEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Locale  string `json:"locale,omitempty"`
}

// Task 转换为 asynq 任务
func (p OrderReceivedEmailPayload) Task() (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderReceivedEmail, body), nil
}

func (p OrderReceivedEmailPayload) taskID() string {
	return fmt.Sprintf("%s:%d", TaskOrderReceivedEmail, p.OrderID)
}

// DecodeOrderReceivedEmail 从任务中解析载荷，空任务返回零值
func DecodeOrderReceivedEmail(task *asynq.Task) (OrderReceivedEmailPayload, error) {
	var payload OrderReceivedEmailPayload
	if task == nil || len(task.Payload()) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", TaskOrderReceivedEmail, err)
	}
	return payload, nil
}
