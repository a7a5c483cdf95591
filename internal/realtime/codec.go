package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// decodeFrame turns one inbound frame into a typed event. A nil event with a
// nil error means the frame carries nothing for subscribers.
func decodeFrame(data []byte) (models.Event, error) {
	var frame models.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("error decoding frame: %w", err)
	}

	switch frame.Event {
	case models.EventMessage:
		var msg models.Message
		if err := unmarshalData(frame, &msg); err != nil {
			return nil, err
		}
		return models.MessageEvent{Message: msg}, nil
	case models.EventMessageSent:
		return decodeAs[models.MessageSentEvent](frame)
	case models.EventNotification:
		ev, err := decodeAs[models.NotificationEvent](frame)
		if err != nil {
			return nil, err
		}
		ev.Raw = frame.Data
		return ev, nil
	case models.EventCallInvitation:
		ev, err := decodeAs[models.CallInvitationEvent](frame)
		if err != nil {
			return nil, err
		}
		ev.Raw = frame.Data
		return ev, nil
	case models.EventMessageRead:
		return decodeAs[models.ReadReceiptEvent](frame)
	case models.EventMessageReadConfirmed:
		return decodeAs[models.ReadReceiptBatchEvent](frame)
	case models.EventUserStatus:
		return decodeAs[models.UserStatusEvent](frame)
	case models.EventPong:
		return decodeAs[models.PongEvent](frame)
	case models.EventError:
		return decodeAs[models.ServerErrorEvent](frame)
	case models.EventConnected:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, frame.Event)
	}
}

func decodeAs[T models.Event](frame models.Frame) (T, error) {
	var ev T
	err := unmarshalData(frame, &ev)
	return ev, err
}

func unmarshalData(frame models.Frame, dst any) error {
	if len(frame.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(frame.Data, dst); err != nil {
		return fmt.Errorf("error decoding %s data: %w", frame.Event, err)
	}
	return nil
}

func encodeFrame(event string, payload any) ([]byte, error) {
	frame := models.Frame{Event: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error encoding %s data: %w", event, err)
		}
		frame.Data = data
	}
	return json.Marshal(frame)
}
