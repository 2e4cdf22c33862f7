package http

import (
	"encoding/json"

	"github.com/sockroom/sockroom-server/internal/core"
	"github.com/sockroom/sockroom-server/internal/proto"
)

// dispatchInbound applies one inbound envelope to the core. A returned
// *proto.Error is a protocol-level problem to report back to the client;
// domain-level drops stay silent.
func dispatchInbound(ctrl *core.Controller, client *core.Client, inbound proto.Inbound) (*proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, err
		}
		if join.Room == "" || join.Username == "" {
			return &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room and username are required"}, nil
		}
		// Domain failures are a deliberate no-op at the wire: the
		// controller already logged them and nothing is reported back.
		_ = ctrl.Join(client.ID, join.Room, join.Username)
		return nil, nil
	case proto.InboundTypeMsg:
		var msg proto.MsgData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		ctrl.RoomMessage(client.ID, msg.Text)
		return nil, nil
	case proto.InboundTypePrivate:
		var pm proto.PrivateData
		if err := json.Unmarshal(inbound.Data, &pm); err != nil {
			return nil, err
		}
		if pm.To == "" {
			return &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target connection id is required"}, nil
		}
		ctrl.PrivateMessage(client.ID, pm.To, pm.Text)
		return nil, nil
	case proto.InboundTypeTyping:
		ctrl.TypingStart(client.ID)
		return nil, nil
	case proto.InboundTypeStopTyping:
		ctrl.TypingStop(client.ID)
		return nil, nil
	default:
		return &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessage,
			Data: proto.EventMessage{
				Sender: event.Message.From,
				Text:   event.Message.Text,
				Time:   event.Message.Time,
			},
		}
	case core.EventPrivateMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNamePrivate,
			Data: proto.EventMessage{
				Sender:  event.Message.From,
				Text:    event.Message.Text,
				Time:    event.Message.Time,
				Private: true,
			},
		}
	case core.EventPresence:
		users := make([]proto.PresenceEntry, 0, len(event.Users))
		for _, m := range event.Users {
			users = append(users, proto.PresenceEntry{Username: m.Username, ID: m.ConnID})
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNamePresence,
			Data: proto.EventPresence{
				Room:  event.Room,
				Users: users,
			},
		}
	case core.EventTypingStart:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameTyping,
			Data:  proto.EventTyping{Username: event.User},
		}
	case core.EventTypingStop:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameStopTyping,
			Data:  proto.EventStopTyping{},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
