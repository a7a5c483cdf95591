// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/h2non/filetype"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

const defaultMimeType = "application/octet-stream"

// IDGenerator produces message correlation ids.
type IDGenerator interface {
	Generate() string
}

type clientTransferService struct {
	auth    Authorizer
	adapter adapter.ServerAdapter
	channel RealtimeChannel
	ids     IDGenerator
	cfg     config.ClientTransfer
	logger  *logger.Logger
}

// NewClientTransferService creates the outbound message dispatcher.
func NewClientTransferService(
	auth Authorizer,
	serverAdapter adapter.ServerAdapter,
	channel RealtimeChannel,
	ids IDGenerator,
	cfg config.ClientTransfer,
	logger *logger.Logger,
) ClientTransferService {
	return &clientTransferService{
		auth:    auth,
		adapter: serverAdapter,
		channel: channel,
		ids:     ids,
		cfg:     cfg,
		logger:  logger,
	}
}

func (t *clientTransferService) SendText(ctx context.Context, target models.Target, text string) (models.DispatchResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.DispatchResult{}, ErrInvalidDataProvided
	}

	frame := newFrame(t.ids.Generate(), target, models.PayloadText)
	frame.Message = text

	if err := t.channel.Emit(ctx, models.EventSendMessage, frame); err != nil {
		return models.DispatchResult{}, fmt.Errorf("error sending message: %w", err)
	}
	return models.DispatchResult{Tier: models.TierInline, Type: models.PayloadText, ClientID: frame.ClientID, Preview: text}, nil
}

// Dispatch implements the tiered delivery of binary payloads:
//
//  1. payloads declared larger than MaxFileSize are rejected up front;
//  2. the payload is uploaded over HTTP (images to the photo store) and only
//     its reference (plus a thumbnail for images) goes through the realtime
//     channel;
//  3. if the upload fails the encoded payload goes through the channel,
//     flagged for server-side materialization when it exceeds
//     InlineThreshold.
func (t *clientTransferService) Dispatch(ctx context.Context, target models.Target, payload models.OutboundPayload) (models.DispatchResult, error) {
	log := logger.FromContext(ctx)

	size := payload.DeclaredSize
	if size <= 0 {
		size = int64(len(payload.Data))
	}
	if size > t.cfg.MaxFileSize {
		return models.DispatchResult{}, fmt.Errorf("%w: %d > %d bytes", ErrOversizePayload, size, t.cfg.MaxFileSize)
	}
	if len(payload.Data) == 0 {
		return models.DispatchResult{}, ErrEmptyPayload
	}

	payloadType, mimeType, ext := classifyPayload(payload)
	fileName := payload.FileName
	if fileName == "" {
		fileName = string(payloadType)
		if ext != "" {
			fileName += "." + ext
		}
	}

	frame := newFrame(t.ids.Generate(), target, payloadType)
	frame.FileName = fileName
	frame.FileSize = int64(len(payload.Data))
	if payloadType == models.PayloadAudio {
		frame.MessageType = models.PayloadAudio
		frame.Duration = payload.Duration
	}

	var uploaded models.UploadResponse
	uploadErr := t.auth.AuthorizedDo(ctx, func(ctx context.Context) error {
		var err error
		uploaded, err = t.upload(ctx, payloadType, fileName, payload.Data)
		return err
	})
	if errors.Is(uploadErr, ErrAuthExpired) || errors.Is(uploadErr, context.Canceled) {
		return models.DispatchResult{}, uploadErr
	}

	result := models.DispatchResult{Type: payloadType, ClientID: frame.ClientID}

	if uploadErr == nil {
		result.Tier = models.TierUploaded
		result.FileURL = uploaded.FileURL
		frame.FileURL = uploaded.FileURL
		if uploaded.FileName != "" {
			frame.FileName = uploaded.FileName
		}

		if payloadType == models.PayloadImage {
			preview, err := makePreview(payload.Data, t.cfg.PreviewMaxSide, t.cfg.PreviewQuality)
			if err != nil {
				log.Warn().Err(err).Str("file_name", fileName).Msg("sending image without preview")
			} else {
				frame.Message = preview
				result.Preview = preview
			}
		}
	} else {
		log.Warn().Err(uploadErr).Str("file_name", fileName).Msg("upload failed, sending payload inline")

		body := dataURI(mimeType, payload.Data)
		frame.Message = body
		result.Tier = models.TierInline
		if int64(len(body)) > t.cfg.InlineThreshold {
			frame.IsOriginal = true
			result.Tier = models.TierDump
		}
		result.Preview = body
	}

	if err := t.channel.Emit(ctx, models.EventSendMessage, frame); err != nil {
		return models.DispatchResult{}, fmt.Errorf("error sending %s message: %w", payloadType, err)
	}

	log.Debug().
		Str("client_id", result.ClientID).
		Str("tier", string(result.Tier)).
		Int64("size", size).
		Msg("payload dispatched")

	return result, nil
}

// upload sends images to the photo store and everything else to the generic
// file endpoint.
func (t *clientTransferService) upload(ctx context.Context, payloadType models.PayloadType, fileName string, data []byte) (models.UploadResponse, error) {
	if payloadType != models.PayloadImage {
		return t.adapter.UploadFile(ctx, fileName, bytes.NewReader(data))
	}

	photo, err := t.adapter.UploadPhoto(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return models.UploadResponse{}, err
	}
	if photo.PhotoID == "" {
		return models.UploadResponse{}, ErrMissingPhotoID
	}
	return models.UploadResponse{
		FileURL:  adapter.PhotoRef(photo.PhotoID),
		FileName: photo.FileName,
		FileSize: photo.FileSize,
	}, nil
}

func newFrame(clientID string, target models.Target, payloadType models.PayloadType) models.SendMessageFrame {
	frame := models.SendMessageFrame{
		ClientID: clientID,
		Type:     payloadType,
	}
	if target.RoomID != 0 {
		frame.RoomID = target.RoomID
	} else {
		frame.TargetUserID = target.UserID
	}
	return frame
}

// classifyPayload trusts the declared type and sniffs the content otherwise.
func classifyPayload(payload models.OutboundPayload) (models.PayloadType, string, string) {
	kind, _ := filetype.Match(payload.Data)

	mimeType := payload.MimeType
	if mimeType == "" && kind != filetype.Unknown {
		mimeType = kind.MIME.Value
	}
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	payloadType := payload.Type
	if payloadType == "" {
		switch {
		case filetype.IsImage(payload.Data):
			payloadType = models.PayloadImage
		case filetype.IsAudio(payload.Data):
			payloadType = models.PayloadAudio
		case filetype.IsVideo(payload.Data):
			payloadType = models.PayloadVideo
		default:
			payloadType = models.PayloadFile
		}
	}

	return payloadType, mimeType, kind.Extension
}
