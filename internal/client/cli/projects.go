package cli

import (
	"context"
	"fmt"
	"os"
)

// Projects lists the caller's projects.
func (a *App) Projects(ctx context.Context) error {
	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects yet")
		return nil
	}

	for _, p := range projects {
		fmt.Printf("%s  %-10s  %s\n", p.ID, p.Status, p.Name)
	}
	return nil
}

// AddProject prompts for a name and description and creates a project.
func (a *App) AddProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter project name", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.api.CreateProject(ctx, name, description)
	if err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Printf("Created project %s\n", p.ID)
	return nil
}

// Health prints the server health report.
func (a *App) Health(ctx context.Context) error {
	out, err := a.api.Health(ctx)
	if err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Printf("backend: %v, db: %v\n", out["backend"], out["db"])
	return nil
}
