package gateway

import (
	"errors"

	"medigraph/app/service/pipeline"
	"medigraph/app/service/session"

	"github.com/gofiber/fiber/v2"
)

type queryRequest struct {
	Query string `json:"query"`
}

type appendTurnRequest struct {
	Sender  session.Sender `json:"sender"`
	Content string         `json:"content"`
	Kind    session.Kind   `json:"kind"`
}

// handleQuery is the single stateless QA endpoint. All three outcomes
// share the Answer shape with HTTP 200 so clients branch on which field
// is set, not on status codes.
func (s *Service) handleQuery(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(pipeline.Answer{Error: "Invalid request body."})
	}

	return c.JSON(s.pipelineSvc.Ask(c.UserContext(), req.Query))
}

func (s *Service) handleListSessions(c *fiber.Ctx) error {
	sessions, err := s.sessionSvc.List()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list sessions")
	}

	return c.JSON(sessions)
}

func (s *Service) handleCreateSession(c *fiber.Ctx) error {
	created, err := s.sessionSvc.Create()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Service) handleGetSession(c *fiber.Ctx) error {
	found, err := s.sessionSvc.Get(c.Params("id"))
	if errors.Is(err, session.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load session")
	}

	return c.JSON(found)
}

func (s *Service) handleAppendTurn(c *fiber.Ctx) error {
	var req appendTurnRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if req.Sender != session.SenderUser && req.Sender != session.SenderAssistant {
		return fiber.NewError(fiber.StatusBadRequest, "unknown sender")
	}

	updated, err := s.sessionSvc.Append(c.Params("id"), session.Turn{
		Sender:  req.Sender,
		Content: req.Content,
		Kind:    req.Kind,
	})
	if errors.Is(err, session.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to append turn")
	}

	return c.JSON(updated)
}

func (s *Service) handleDeleteSession(c *fiber.Ctx) error {
	err := s.sessionSvc.Delete(c.Params("id"))
	if errors.Is(err, session.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete session")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
