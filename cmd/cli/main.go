// Command carder is a CLI client for the carder back office.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/carder/gen/go/carder/v1"
	"github.com/and161185/carder/internal/convert"
)

// ---- session token store ----

type tokenFile struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "carder")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "carder")
}

func tokenPath() string { return filepath.Join(cfgDir(), "session.json") }

func saveToken(tok string, exp time.Time) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{SessionToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.SessionToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid session (run open or login)")
	}
	return tf.SessionToken, nil
}

func dropToken() error {
	err := os.Remove(tokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type dialOptions struct {
	addr       string
	caPath     string
	skipVerify bool
	plaintext  bool
}

func dial(o dialOptions, bearer string) (*grpc.ClientConn, pb.BackofficeClient, error) {
	var opts []grpc.DialOption
	if o.plaintext {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		creds, err := loadTLS(o.caPath, o.skipVerify)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !o.plaintext}))
	}
	cc, err := grpc.NewClient(o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewBackofficeClient(cc), nil
}

// ---- utils ----

var protoJSON = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

// printJSON writes v indented. RPC responses keep their proto field names.
func printJSON(w io.Writer, v any) {
	if m, ok := v.(proto.Message); ok {
		b, err := protoJSON.Marshal(m)
		if err == nil {
			_, _ = w.Write(append(b, '\n'))
		}
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `carder CLI
Usage:
  carder -addr HOST:PORT [-cacert file | -insecure | -plaintext] <cmd> [args]

Commands:
  version
  open                                         (new anonymous session)
  register   -name <full name> -email <e> -p <password>
  login      -email <e> -p <password> | -email <e> -code <otp>
  logout
  whoami
  activate   [-code <otp>]                     (no code: send one)
  orgs
  org-create -key <k> -name <n>
  event-create -org <id> -name <n>
  enrol      -org <id> -event <id> -name <n> -email <e>
  grant      -file <policy.json>
  revoke     -id <policy id>
  policies   -kind <resource kind> -id <resource id>
  skus
  cart
  cart-set   -sku <id> -qty <n>
  cart-clear
  checkout   -org <id>
  buy        -org <id> -sku <id> -qty <n>
  orders     -org <id>
  order      -id <purchase order id>
  licenses   -org <id>
  assign     -org <id> -attendee <id> -license <id>
  unassign   -attendee <id> -license <id>
  attendee-licenses -attendee <id>
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS and the session bearer for RPC calls.
func main() {
	var o dialOptions
	flag.StringVar(&o.addr, "addr", "localhost:8443", "server addr")
	flag.StringVar(&o.caPath, "cacert", "", "CA cert (PEM)")
	flag.BoolVar(&o.skipVerify, "insecure", false, "skip cert verify (dev)")
	flag.BoolVar(&o.plaintext, "plaintext", false, "no TLS (dev server without certificates)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	if name == "version" {
		fmt.Printf("carder %s (%s)\n", version, buildDate)
		return
	}
	cmd, ok := commands[name]
	if !ok {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, _ := loadToken()
	if name == "open" || (token == "" && cmd.needsSession) {
		var err error
		if token, err = openSession(ctx, o); err != nil {
			fail(err)
		}
	}

	cc, cli, err := dial(o, token)
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	out, err := cmd.run(ctx, cli, args)
	if err != nil {
		fail(err)
	}
	if name == "logout" {
		_ = dropToken()
	}
	if out != nil {
		printJSON(os.Stdout, out)
	}
}

// openSession starts an anonymous session and stores its token.
func openSession(ctx context.Context, o dialOptions) (string, error) {
	cc, cli, err := dial(o, "")
	if err != nil {
		return "", err
	}
	defer cc.Close()
	resp, err := cli.OpenSession(ctx, &emptypb.Empty{})
	if err != nil {
		return "", err
	}
	if err := saveToken(resp.GetToken(), convert.Timestamp(resp.GetExpiresAt())); err != nil {
		return "", err
	}
	return resp.GetToken(), nil
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		for _, d := range s.Details() {
			if info, ok := d.(*errdetails.ErrorInfo); ok {
				fmt.Fprintf(os.Stderr, "rpc error: code=%s reason=%s msg=%s details=%v\n",
					s.Code(), info.GetReason(), s.Message(), info.GetMetadata())
				os.Exit(1)
			}
		}
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
