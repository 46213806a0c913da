package rag

import (
	"context"
	"fmt"
	"io"

	"github.com/ducnh/vstore/internal/openai"
)

// fakeBackend implements Backend via per-method function fields. A call to
// a method whose field is unset fails the operation, so tests notice
// backend traffic they did not expect.
type fakeBackend struct {
	createStore func(name string) (*openai.Store, error)
	listStores  func() ([]openai.Store, error)
	getStore    func(storeID string) (*openai.Store, error)
	deleteStore func(storeID string) (bool, error)

	uploadFile  func(filename string, content io.Reader) (*openai.FileObject, error)
	attachFile  func(storeID, fileID string, strategy *openai.ChunkingStrategy, attrs map[string]string) (*openai.StoreFile, error)
	listFiles   func(storeID string) ([]openai.StoreFile, error)
	updateAttrs func(storeID, fileID string, attrs map[string]string) (*openai.StoreFile, error)
	deleteFile  func(storeID, fileID string) (bool, error)
	searchStore func(storeID, query string, maxResults int) (*openai.SearchResponse, error)

	createConversation func(metadata map[string]string) (*openai.Conversation, error)
	getConversation    func(conversationID string) (*openai.Conversation, error)
	updateConversation func(conversationID string, metadata map[string]string) (*openai.Conversation, error)
	deleteConversation func(conversationID string) (bool, error)
	listItems          func(conversationID string, limit int) ([]openai.ConversationItem, error)

	createResponse func(req *openai.ResponseRequest) (*openai.Response, error)
	getResponse    func(responseID string) (*openai.Response, error)
	cancelResponse func(responseID string) (*openai.Response, error)
}

func errUnexpected(method string) error {
	return fmt.Errorf("unexpected backend call: %s", method)
}

func (f *fakeBackend) CreateStore(_ context.Context, name string) (*openai.Store, error) {
	if f.createStore == nil {
		return nil, errUnexpected("CreateStore")
	}
	return f.createStore(name)
}

func (f *fakeBackend) ListStores(_ context.Context) ([]openai.Store, error) {
	if f.listStores == nil {
		return nil, errUnexpected("ListStores")
	}
	return f.listStores()
}

func (f *fakeBackend) GetStore(_ context.Context, storeID string) (*openai.Store, error) {
	if f.getStore == nil {
		return nil, errUnexpected("GetStore")
	}
	return f.getStore(storeID)
}

func (f *fakeBackend) DeleteStore(_ context.Context, storeID string) (bool, error) {
	if f.deleteStore == nil {
		return false, errUnexpected("DeleteStore")
	}
	return f.deleteStore(storeID)
}

func (f *fakeBackend) UploadFile(_ context.Context, filename string, content io.Reader) (*openai.FileObject, error) {
	if f.uploadFile == nil {
		return nil, errUnexpected("UploadFile")
	}
	return f.uploadFile(filename, content)
}

func (f *fakeBackend) AttachFile(_ context.Context, storeID, fileID string, strategy *openai.ChunkingStrategy, attrs map[string]string) (*openai.StoreFile, error) {
	if f.attachFile == nil {
		return nil, errUnexpected("AttachFile")
	}
	return f.attachFile(storeID, fileID, strategy, attrs)
}

func (f *fakeBackend) ListFiles(_ context.Context, storeID string) ([]openai.StoreFile, error) {
	if f.listFiles == nil {
		return nil, errUnexpected("ListFiles")
	}
	return f.listFiles(storeID)
}

func (f *fakeBackend) UpdateFileAttributes(_ context.Context, storeID, fileID string, attrs map[string]string) (*openai.StoreFile, error) {
	if f.updateAttrs == nil {
		return nil, errUnexpected("UpdateFileAttributes")
	}
	return f.updateAttrs(storeID, fileID, attrs)
}

func (f *fakeBackend) DeleteFile(_ context.Context, storeID, fileID string) (bool, error) {
	if f.deleteFile == nil {
		return false, errUnexpected("DeleteFile")
	}
	return f.deleteFile(storeID, fileID)
}

func (f *fakeBackend) SearchStore(_ context.Context, storeID, query string, maxResults int) (*openai.SearchResponse, error) {
	if f.searchStore == nil {
		return nil, errUnexpected("SearchStore")
	}
	return f.searchStore(storeID, query, maxResults)
}

func (f *fakeBackend) CreateConversation(_ context.Context, metadata map[string]string) (*openai.Conversation, error) {
	if f.createConversation == nil {
		return nil, errUnexpected("CreateConversation")
	}
	return f.createConversation(metadata)
}

func (f *fakeBackend) GetConversation(_ context.Context, conversationID string) (*openai.Conversation, error) {
	if f.getConversation == nil {
		return nil, errUnexpected("GetConversation")
	}
	return f.getConversation(conversationID)
}

func (f *fakeBackend) UpdateConversation(_ context.Context, conversationID string, metadata map[string]string) (*openai.Conversation, error) {
	if f.updateConversation == nil {
		return nil, errUnexpected("UpdateConversation")
	}
	return f.updateConversation(conversationID, metadata)
}

func (f *fakeBackend) DeleteConversation(_ context.Context, conversationID string) (bool, error) {
	if f.deleteConversation == nil {
		return false, errUnexpected("DeleteConversation")
	}
	return f.deleteConversation(conversationID)
}

func (f *fakeBackend) ListConversationItems(_ context.Context, conversationID string, limit int) ([]openai.ConversationItem, error) {
	if f.listItems == nil {
		return nil, errUnexpected("ListConversationItems")
	}
	return f.listItems(conversationID, limit)
}

func (f *fakeBackend) CreateResponse(_ context.Context, req *openai.ResponseRequest) (*openai.Response, error) {
	if f.createResponse == nil {
		return nil, errUnexpected("CreateResponse")
	}
	return f.createResponse(req)
}

func (f *fakeBackend) GetResponse(_ context.Context, responseID string) (*openai.Response, error) {
	if f.getResponse == nil {
		return nil, errUnexpected("GetResponse")
	}
	return f.getResponse(responseID)
}

func (f *fakeBackend) CancelResponse(_ context.Context, responseID string) (*openai.Response, error) {
	if f.cancelResponse == nil {
		return nil, errUnexpected("CancelResponse")
	}
	return f.cancelResponse(responseID)
}
