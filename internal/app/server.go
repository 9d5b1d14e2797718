package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"anonapi/internal/types"
)

func (s Service) ServerList(ctx context.Context) (ServerListResult, error) {
	settings, err := s.Settings.Load()
	if err != nil {
		return ServerListResult{}, err
	}
	return ServerListResult{Servers: settings.Servers, Active: settings.ActiveServer}, nil
}

func (s Service) ServerActivate(ctx context.Context, req ServerActivateRequest) (ServerStatusResult, error) {
	settings, err := s.Settings.Load()
	if err != nil {
		return ServerStatusResult{}, err
	}
	for _, server := range settings.Servers {
		if server.Name == req.Name {
			settings.ActiveServer = server.Name
			if err := s.Settings.Save(settings); err != nil {
				return ServerStatusResult{}, err
			}
			return ServerStatusResult{Server: server}, nil
		}
	}
	return ServerStatusResult{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("unknown server '%s', known servers: %s",
			req.Name, serverNames(settings.Servers)))
}

func (s Service) ServerStatus(ctx context.Context) (ServerStatusResult, error) {
	settings, err := s.Settings.Load()
	if err != nil {
		return ServerStatusResult{}, err
	}
	server, err := activeServer(settings)
	if err != nil {
		return ServerStatusResult{}, err
	}
	return ServerStatusResult{Server: server}, nil
}

func activeServer(settings types.Settings) (types.Server, error) {
	for _, server := range settings.Servers {
		if server.Name == settings.ActiveServer && settings.ActiveServer != "" {
			return server, nil
		}
	}
	return types.Server{}, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("no active server; activate one with 'server activate <NAME>', known servers: %s",
			serverNames(settings.Servers)))
}

func serverNames(servers []types.Server) string {
	if len(servers) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(servers))
	for _, server := range servers {
		names = append(names, server.Name)
	}
	return strings.Join(names, ", ")
}
