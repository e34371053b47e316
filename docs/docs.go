// Package docs registers the Swagger specification served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "description": "Verify email and password and issue a JWT",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successfully logged in",
                        "schema": {"$ref": "#/definitions/service.TokenResponse"}
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Create a user account with username, email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration data",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully registered",
                        "schema": {"$ref": "#/definitions/service.UserResponse"}
                    },
                    "400": {
                        "description": "Invalid request body or duplicate user",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Report application and database health",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Application is healthy",
                        "schema": {"$ref": "#/definitions/handlers.HealthResponse"}
                    },
                    "503": {
                        "description": "Application is unhealthy",
                        "schema": {"$ref": "#/definitions/handlers.HealthResponse"}
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Report process liveness",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "Application is alive",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Report readiness to serve traffic",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Application is ready",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "503": {
                        "description": "Application is not ready",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/meetings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List meetings the user organizes or attends",
                "produces": ["application/json"],
                "tags": ["meetings"],
                "summary": "List my meetings",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "team", "in": "query"},
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Meetings",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/service.MeetingResponse"}}
                    },
                    "400": {
                        "description": "Invalid filters",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Schedule a meeting in a team without double-booking any participant",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["meetings"],
                "summary": "Schedule a meeting",
                "parameters": [
                    {
                        "description": "Meeting data",
                        "name": "meeting",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateMeetingRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Meeting scheduled",
                        "schema": {"$ref": "#/definitions/service.MeetingResponse"}
                    },
                    "400": {
                        "description": "Invalid request or schedule conflict",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not a manager or admin of the team",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/meetings/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get a meeting the user organizes or attends",
                "produces": ["application/json"],
                "tags": ["meetings"],
                "summary": "Get meeting by ID",
                "parameters": [
                    {"type": "string", "description": "Meeting ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Meeting",
                        "schema": {"$ref": "#/definitions/service.MeetingResponse"}
                    },
                    "400": {
                        "description": "Invalid meeting ID",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Meeting not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Reschedule a meeting or change its participants; conflicts are re-checked",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["meetings"],
                "summary": "Reschedule a meeting",
                "parameters": [
                    {"type": "string", "description": "Meeting ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to update",
                        "name": "meeting",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateMeetingRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated meeting",
                        "schema": {"$ref": "#/definitions/service.MeetingResponse"}
                    },
                    "400": {
                        "description": "Invalid request or schedule conflict",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Neither organizer nor participant",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Meeting not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List tasks across the user's teams",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "team", "in": "query"},
                    {"type": "string", "description": "Author ID (UUID)", "name": "author", "in": "query"},
                    {"type": "string", "description": "Executor ID (UUID)", "name": "executor", "in": "query"},
                    {"type": "string", "description": "Status (open, progress, completed)", "name": "status", "in": "query"},
                    {"type": "string", "description": "Substring of title or description", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Tasks",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/service.TaskResponse"}}
                    },
                    "400": {
                        "description": "Invalid filters",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Create a task in a team; managers and admins only",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Create a task",
                "parameters": [
                    {
                        "description": "Task data",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateTaskRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully created task",
                        "schema": {"$ref": "#/definitions/service.TaskResponse"}
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Insufficient role",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/tasks/executor-evaluations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List every rating the user has received as a task executor, with the average",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "My evaluations as executor",
                "responses": {
                    "200": {
                        "description": "Evaluations and average",
                        "schema": {"$ref": "#/definitions/service.ExecutorEvaluationsResponse"}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get a task in one of the user's teams",
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Get task by ID",
                "parameters": [
                    {"type": "string", "description": "Task ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Task",
                        "schema": {"$ref": "#/definitions/service.TaskResponse"}
                    },
                    "400": {
                        "description": "Invalid task ID",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Update a task; the author may change any field, the executor only the status",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "string", "description": "Task ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to update",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateTaskRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated task",
                        "schema": {"$ref": "#/definitions/service.TaskResponse"}
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not author or executor",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/tasks/{id}/comments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List a task's comments, newest first",
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List task comments",
                "parameters": [
                    {"type": "string", "description": "Task ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Comments",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/service.CommentResponse"}}
                    },
                    "400": {
                        "description": "Invalid task ID",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Comment on a task in one of the user's teams",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Comment on a task",
                "parameters": [
                    {"type": "string", "description": "Task ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Comment text",
                        "name": "comment",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateCommentRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Comment created",
                        "schema": {"$ref": "#/definitions/service.CommentResponse"}
                    },
                    "400": {
                        "description": "Empty text",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/tasks/{id}/evaluate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Rate a completed task; author only, once per task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Evaluate a completed task",
                "parameters": [
                    {"type": "string", "description": "Task ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Rating",
                        "name": "evaluation",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.EvaluateTaskRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Evaluation recorded",
                        "schema": {"$ref": "#/definitions/service.EvaluationResponse"}
                    },
                    "400": {
                        "description": "Task not completed, already rated, or rating out of range",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not the task author",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/tasks/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Change only the task status under the same rules as a full update",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Update task status",
                "parameters": [
                    {"type": "string", "description": "Task ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "New status",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateTaskStatusRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated task",
                        "schema": {"$ref": "#/definitions/service.TaskResponse"}
                    },
                    "400": {
                        "description": "Invalid status or transition",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not author or executor",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Task not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get every team the authenticated user belongs to",
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "List my teams",
                "responses": {
                    "200": {
                        "description": "Teams",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/service.TeamResponse"}}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Create a team; the creator becomes its admin",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Create a new team",
                "parameters": [
                    {
                        "description": "Team data",
                        "name": "team",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateTeamRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Successfully created team",
                        "schema": {"$ref": "#/definitions/service.TeamResponse"}
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get a team the authenticated user is a member of",
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Get team by ID",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Team",
                        "schema": {"$ref": "#/definitions/service.TeamResponse"}
                    },
                    "400": {
                        "description": "Invalid team ID",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams/{id}/add-participant": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Add an existing user to the team; team admins only",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Add a member to a team",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "User to add and optional role",
                        "name": "participant",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.AddParticipantRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Member added"},
                    "400": {
                        "description": "Invalid request or already a member",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not a team admin",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams/{id}/change-role": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Assign manager or participant to another member; team admins only",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Change a member's role",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Target user and new role",
                        "name": "change",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.ChangeRoleRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Role changed"},
                    "400": {
                        "description": "Invalid request",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not a team admin",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams/{id}/my-role": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get the authenticated user's role in a team, null when not a member",
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Get my role in a team",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Role",
                        "schema": {"$ref": "#/definitions/service.MyRoleResponse"}
                    },
                    "400": {
                        "description": "Invalid team ID",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams/{id}/remove-participant": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Remove a member from the team; team admins only",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Remove a member from a team",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "User to remove",
                        "name": "participant",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.RemoveParticipantRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Member removed"},
                    "400": {
                        "description": "Invalid request or not a member",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "403": {
                        "description": "Not a team admin",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/teams/{id}/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get the members of a team with their roles, visible to members only",
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "List team members",
                "parameters": [
                    {"type": "string", "description": "Team ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Members",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/service.TeamMemberResponse"}}
                    },
                    "400": {
                        "description": "Invalid team ID",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Get the authenticated user's profile",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get current user",
                "responses": {
                    "200": {
                        "description": "Current user",
                        "schema": {"$ref": "#/definitions/service.UserResponse"}
                    },
                    "401": {
                        "description": "Not authenticated",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/users/set_password": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Change the authenticated user's password after verifying the current one",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Change password",
                "parameters": [
                    {
                        "description": "Current and new password",
                        "name": "passwords",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.ChangePasswordRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Password changed"},
                    "400": {
                        "description": "Invalid request body",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "401": {
                        "description": "Current password incorrect",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "services": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "models.TaskStatus": {
            "type": "string",
            "enum": ["open", "progress", "completed"],
            "x-enum-varnames": ["TaskStatusOpen", "TaskStatusProgress", "TaskStatusCompleted"]
        },
        "models.TeamRole": {
            "type": "string",
            "enum": ["admin", "manager", "participant"],
            "x-enum-varnames": ["TeamRoleAdmin", "TeamRoleManager", "TeamRoleParticipant"]
        },
        "service.AddParticipantRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {
                "role": {"$ref": "#/definitions/models.TeamRole"},
                "user_id": {"type": "string"}
            }
        },
        "service.ChangePasswordRequest": {
            "type": "object",
            "required": ["current_password", "new_password"],
            "properties": {
                "current_password": {"type": "string"},
                "new_password": {"type": "string", "minLength": 8}
            }
        },
        "service.ChangeRoleRequest": {
            "type": "object",
            "required": ["role", "user_id"],
            "properties": {
                "role": {"$ref": "#/definitions/models.TeamRole"},
                "user_id": {"type": "string"}
            }
        },
        "service.CommentResponse": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/service.UserResponse"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "task_id": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "service.CreateCommentRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"}
            }
        },
        "service.CreateMeetingRequest": {
            "type": "object",
            "required": ["date", "duration_minutes", "start_time"],
            "properties": {
                "date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "start_time": {"type": "string"},
                "team_id": {"type": "string"}
            }
        },
        "service.CreateTaskRequest": {
            "type": "object",
            "required": ["deadline", "executor_id", "team_id", "title"],
            "properties": {
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "executor_id": {"type": "string"},
                "team_id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.CreateTeamRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"}
            }
        },
        "service.EvaluateTaskRequest": {
            "type": "object",
            "required": ["rating"],
            "properties": {
                "rating": {"type": "integer"}
            }
        },
        "service.EvaluationResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "evaluator": {"$ref": "#/definitions/service.UserResponse"},
                "id": {"type": "string"},
                "rating": {"type": "integer"},
                "task_id": {"type": "string"},
                "task_title": {"type": "string"}
            }
        },
        "service.ExecutorEvaluationsResponse": {
            "type": "object",
            "properties": {
                "average_rating": {"type": "number"},
                "evaluations": {"type": "array", "items": {"$ref": "#/definitions/service.EvaluationResponse"}},
                "total_evaluations": {"type": "integer"}
            }
        },
        "service.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "service.MeetingResponse": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/service.UserResponse"},
                "date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "id": {"type": "string"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/service.UserResponse"}},
                "start_time": {"type": "string"},
                "team_id": {"type": "string"}
            }
        },
        "service.MyRoleResponse": {
            "type": "object",
            "properties": {
                "role": {"$ref": "#/definitions/models.TeamRole"}
            }
        },
        "service.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "maxLength": 254},
                "first_name": {"type": "string", "maxLength": 150},
                "last_name": {"type": "string", "maxLength": 150},
                "password": {"type": "string", "minLength": 8},
                "username": {"type": "string", "maxLength": 150, "minLength": 1}
            }
        },
        "service.RemoveParticipantRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {
                "user_id": {"type": "string"}
            }
        },
        "service.TaskResponse": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/service.UserResponse"},
                "created_at": {"type": "string"},
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "executor": {"$ref": "#/definitions/service.UserResponse"},
                "id": {"type": "string"},
                "status": {"$ref": "#/definitions/models.TaskStatus"},
                "team_id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.TeamMemberResponse": {
            "type": "object",
            "properties": {
                "role": {"$ref": "#/definitions/models.TeamRole"},
                "user": {"$ref": "#/definitions/service.UserResponse"}
            }
        },
        "service.TeamResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/service.TeamMemberResponse"}},
                "title": {"type": "string"}
            }
        },
        "service.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/service.UserResponse"}
            }
        },
        "service.UpdateMeetingRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "start_time": {"type": "string"}
            }
        },
        "service.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "executor_id": {"type": "string"},
                "status": {"$ref": "#/definitions/models.TaskStatus"},
                "title": {"type": "string"}
            }
        },
        "service.UpdateTaskStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"$ref": "#/definitions/models.TaskStatus"}
            }
        },
        "service.UserResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "last_name": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Teamflow Backend API",
	Description:      "Backend API for team collaboration: teams with role-based membership, tasks with peer evaluation, threaded comments and conflict-free meeting scheduling.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
