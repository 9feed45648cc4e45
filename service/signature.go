package service

import (
	"context"
	"encoding/json"

	"seecooker/dao"
	"seecooker/pkg/log"
	"seecooker/types"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

// SignatureConsumer 消费个性签名更新消息并落库
type SignatureConsumer struct {
	Consumer  rocketmq.PushConsumer
	UsersRepo *dao.Users
}

func (c *SignatureConsumer) Start() error {
	err := c.Consumer.Subscribe(types.TopicUserSignatureModify, consumer.MessageSelector{},
		func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
			for _, msg := range msgs {
				var m types.SignatureMessage
				if err := json.Unmarshal(msg.Body, &m); err != nil {
					log.L.Error("unmarshal signature message", zap.Error(err), zap.String("msgId", msg.MsgId))
					continue
				}
				if err := c.UsersRepo.Update(ctx, m.UserID, map[string]any{"signature": m.Signature}); err != nil {
					log.L.Error("update signature", zap.Error(err), zap.Uint64("userId", m.UserID))
					return consumer.ConsumeRetryLater, nil
				}
			}
			return consumer.ConsumeSuccess, nil
		})
	if err != nil {
		return err
	}
	return c.Consumer.Start()
}

func (c *SignatureConsumer) Shutdown() error {
	return c.Consumer.Shutdown()
}
