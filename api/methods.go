package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sivajeyabalan/blogapi/shared"
)

func (a *Api) SignIn(req shared.SignInRequest, customHost string) (*shared.SignInResponse, *shared.ApiError) {
	serverUrl := hostOrDefault(customHost) + "/api/auth/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, apiError(resp, errorBody)
	}

	var respBody shared.SignInResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) Register(req shared.RegisterRequest, customHost string) (*shared.RegisterResponse, *shared.ApiError) {
	serverUrl := hostOrDefault(customHost) + "/api/auth/register"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := unauthenticatedClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, apiError(resp, errorBody)
	}

	var respBody shared.RegisterResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetCurrentUser() (*shared.User, *shared.ApiError) {
	serverUrl := GetApiHost() + "/api/auth/me"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var user shared.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &user, nil
}

func (a *Api) GetPostsPage(page, limit int) (*shared.PaginatedPosts, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/posts/paginated?page=%d&limit=%d", GetApiHost(), page, limit)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var respBody shared.PaginatedPosts
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetPost(postId int64) (*shared.Post, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/api/posts/%d/full", GetApiHost(), postId)

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var post shared.Post
	err = json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &post, nil
}

// CreatePost sends multipart form data so the optional image travels in the
// same request as the post fields.
func (a *Api) CreatePost(params shared.CreatePostParams) (*shared.Post, *shared.ApiError) {
	serverUrl := GetApiHost() + "/api/posts"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	writer.WriteField("title", params.Title)
	writer.WriteField("content", params.Content)
	writer.WriteField("isPublished", strconv.FormatBool(params.IsPublished))

	if params.ImagePath != "" {
		file, err := os.Open(params.ImagePath)
		if err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: fmt.Sprintf("error opening image: %v", err)}
		}
		defer file.Close()

		part, err := writer.CreateFormFile("image", filepath.Base(params.ImagePath))
		if err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating form file: %v", err)}
		}

		if _, err := io.Copy(part, file); err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error reading image: %v", err)}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error finalizing form: %v", err)}
	}

	resp, err := authenticatedUploadClient.Post(serverUrl, writer.FormDataContentType(), &body)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var post shared.Post
	err = json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &post, nil
}

func (a *Api) UpdatePost(postId int64, req shared.UpdatePostRequest) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/posts/%d", GetApiHost(), postId)
	return a.sendJson(http.MethodPut, serverUrl, req)
}

func (a *Api) DeletePost(postId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/posts/%d", GetApiHost(), postId)
	return a.sendJson(http.MethodDelete, serverUrl, nil)
}

func (a *Api) PublishPost(postId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/posts/%d/publish", GetApiHost(), postId)
	return a.sendJson(http.MethodPatch, serverUrl, nil)
}

func (a *Api) LikePost(postId int64) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/posts/%d/like", GetApiHost(), postId)
	return a.sendJson(http.MethodPost, serverUrl, nil)
}

func (a *Api) CreateComment(postId int64, req shared.CreateCommentRequest) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/posts/%d/comment", GetApiHost(), postId)
	return a.sendJson(http.MethodPost, serverUrl, req)
}

func (a *Api) UpdateComment(commentId int64, req shared.UpdateCommentRequest) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/api/comments/%d", GetApiHost(), commentId)
	return a.sendJson(http.MethodPut, serverUrl, req)
}

func (a *Api) GetUserPosts() (*shared.UserPostsResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/api/posts/user/posts"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var respBody shared.UserPostsResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetProfile() (*shared.ProfileResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/api/users/profile"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var respBody shared.ProfileResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

// sendJson covers the void mutation endpoints: marshal the body when there
// is one, send, and funnel failures through the shared error handling.
func (a *Api) sendJson(method, serverUrl string, reqBody interface{}) *shared.ApiError {
	var bodyReader io.Reader
	if reqBody != nil {
		reqBytes, err := json.Marshal(reqBody)
		if err != nil {
			return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
		}
		bodyReader = bytes.NewBuffer(reqBytes)
	}

	request, err := http.NewRequest(method, serverUrl, bodyReader)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	if reqBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody)
	}

	return nil
}
