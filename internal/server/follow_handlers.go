package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	target, svcErr := s.followService.Follow(c.Context(), userID, targetID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(target)
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	target, svcErr := s.followService.Unfollow(c.Context(), userID, targetID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(target)
}

// GetFollowStatus handles GET /api/users/:id/follow
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.followService.Status(c.Context(), userID, targetID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(status)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 50)

	followers, svcErr := s.followService.Followers(c.Context(), targetID, p.Limit, p.Offset, currentUserID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"limit":     p.Limit,
		"offset":    p.Offset,
	})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 50)

	following, svcErr := s.followService.Following(c.Context(), targetID, p.Limit, p.Offset, currentUserID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"following": following,
		"limit":     p.Limit,
		"offset":    p.Offset,
	})
}
